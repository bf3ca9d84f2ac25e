package catalog

func treatiesTools() []Tool {
	return []Tool{
		{
			Name:        "search_treaties",
			Description: "Search international treaties laid before Parliament, with the countries involved and scrutiny status.",
			API:         Treaties,
			Path:        "/Treaty",
			Params: []Param{
				stringArg("searchText", "SearchText", "Words to search for, e.g. 'trade'").required(),
			},
		},
	}
}

func erskineMayTools() []Tool {
	return []Tool{
		{
			Name:        "search_erskine_may",
			Description: "Search Erskine May, the guide to parliamentary procedure.",
			API:         ErskineMay,
			Path:        "/Search/ParagraphSearchResults/{searchTerm}",
			Params: []Param{
				pathText("searchTerm", "Procedure topic, e.g. 'Speaker'"),
			},
		},
	}
}

func statutoryInstrumentsTools() []Tool {
	return []Tool{
		{
			Name:        "search_statutory_instruments",
			Description: "Search statutory instruments, the regulations and orders made under Acts, by name.",
			API:         StatutoryInstruments,
			Path:        "/StatutoryInstrument",
			Params: []Param{
				stringArg("name", "Name", "Name or title of the instrument").required(),
			},
		},
		{
			Name:        "search_acts_of_parliament",
			Description: "Search Acts of Parliament by name or topic.",
			API:         StatutoryInstruments,
			Path:        "/ActOfParliament",
			Params: []Param{
				stringArg("name", "Name", "Name of the Act, e.g. 'Climate Change Act'").required(),
			},
		},
	}
}

func interestsTools() []Tool {
	return []Tool{
		{
			Name:        "search_roi",
			Description: "Search a member's entries in the Register of Interests: directorships, consultancies, gifts and other declarations.",
			API:         Interests,
			Path:        "/Interests/",
			Params: []Param{
				intArg("memberId", "MemberId", memberIDHint).required(),
			},
		},
		{
			Name:        "interests_categories",
			Description: "List the categories of interest members must declare.",
			API:         Interests,
			Path:        "/Categories",
		},
		{
			Name:        "get_registers_of_interests",
			Description: "List the published Registers of Interests.",
			API:         Interests,
			Path:        "/Registers",
		},
	}
}
