package catalog

import "strings"

// divisionFilters are the filters shared by the grouped and count endpoints. key maps
// argument names onto upstream names, which differ between the two Houses.
func divisionFilters(key func(string) string) []Param {
	return []Param{
		stringArg("searchTerm", key("searchTerm"), "Optional: search division titles"),
		intArg("memberId", key("memberId"), "Optional: member ID"),
		dateArg("startDate", key("startDate"), "Optional: YYYY-MM-DD"),
		dateArg("endDate", key("endDate"), "Optional: YYYY-MM-DD"),
		intArg("divisionNumber", key("divisionNumber"), "Optional: division number"),
		boolArg("includeWhenMemberWasTeller", key("includeWhenMemberWasTeller"), "Optional: include divisions where the member was a teller"),
	}
}

func commonsKey(name string) string {
	return "queryParameters." + name
}

// lordsKey capitalises the argument name: searchTerm becomes SearchTerm.
func lordsKey(name string) string {
	return strings.ToUpper(name[:1]) + name[1:]
}

func commonsVotesTools() []Tool {
	return []Tool{
		{
			Name:        "search_commons_divisions",
			Description: "Search House of Commons divisions by topic, member, date range or division number.",
			API:         CommonsVotes,
			Path:        "/divisions.json/search",
			Params: []Param{
				stringArg("searchTerm", commonsKey("searchTerm"), "Division topic, e.g. 'climate'").required(),
				intArg("memberId", "memberId", "Optional: member ID"),
				dateArg("startDate", commonsKey("startDate"), "Optional: YYYY-MM-DD"),
				dateArg("endDate", commonsKey("endDate"), "Optional: YYYY-MM-DD"),
				intArg("divisionNumber", commonsKey("divisionNumber"), "Optional: division number"),
			},
		},
		{
			Name:        "get_commons_voting_record_for_member",
			Description: "Get how an MP voted in Commons divisions.",
			API:         CommonsVotes,
			Path:        "/divisions.json/membervoting",
			Params: []Param{
				intArg("memberId", commonsKey("memberId"), memberIDHint).required(),
			},
		},
		{
			Name:        "get_commons_division_by_id",
			Description: "Get a Commons division with ayes, noes, tellers and totals.",
			API:         CommonsVotes,
			Path:        "/division/{divisionId}.json",
			Params:      []Param{pathID("divisionId", "Commons division ID")},
		},
		{
			Name:        "get_commons_divisions_grouped_by_party",
			Description: "Get Commons divisions with vote counts grouped by party.",
			API:         CommonsVotes,
			Path:        "/divisions.json/groupedbyparty",
			Params:      divisionFilters(commonsKey),
		},
		{
			Name:        "get_commons_divisions_search_count",
			Description: "Count the Commons divisions matching the filters.",
			API:         CommonsVotes,
			Path:        "/divisions.json/searchTotalResults",
			Params:      divisionFilters(commonsKey),
		},
	}
}

func lordsVotesTools() []Tool {
	return []Tool{
		{
			Name:        "search_lords_divisions",
			Description: "Search House of Lords divisions by topic.",
			API:         LordsVotes,
			Path:        "/divisions/search",
			Params: []Param{
				stringArg("searchTerm", commonsKey("searchTerm"), "Division topic, e.g. 'brexit'").required(),
			},
		},
		{
			Name:        "get_lords_voting_record_for_member",
			Description: "Get how a member of the Lords voted in divisions.",
			API:         LordsVotes,
			Path:        "/Divisions/membervoting",
			Params: params([]Param{
				intArg("memberId", "MemberId", memberIDHint).required(),
				stringArg("searchTerm", "SearchTerm", "Optional: search division titles"),
				boolArg("includeWhenMemberWasTeller", "IncludeWhenMemberWasTeller", "Optional: include divisions where the member was a teller"),
				dateArg("startDate", "StartDate", "Optional: YYYY-MM-DD"),
				dateArg("endDate", "EndDate", "Optional: YYYY-MM-DD"),
				intArg("divisionNumber", "DivisionNumber", "Optional: division number"),
			}, paging("skip", "take", "25")),
		},
		{
			Name:        "get_lords_division_by_id",
			Description: "Get a Lords division with contents, not contents, tellers and totals.",
			API:         LordsVotes,
			Path:        "/Divisions/{divisionId}",
			Params:      []Param{pathID("divisionId", "Lords division ID")},
		},
		{
			Name:        "get_lords_divisions_grouped_by_party",
			Description: "Get Lords divisions with vote counts grouped by party.",
			API:         LordsVotes,
			Path:        "/Divisions/groupedbyparty",
			Params:      divisionFilters(lordsKey),
		},
		{
			Name:        "get_lords_divisions_search_count",
			Description: "Count the Lords divisions matching the filters.",
			API:         LordsVotes,
			Path:        "/Divisions/searchTotalResults",
			Params:      divisionFilters(lordsKey),
		},
	}
}
