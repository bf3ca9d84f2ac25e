package catalog

func committeesTools() []Tool {
	committeeID := pathID("committeeId", "Committee ID, get it from a committee search first")
	onWebsiteOnly := func(key string) Param {
		return boolArg("showOnWebsiteOnly", key, "Only include items shown on the parliament website").withDefault("true")
	}

	eventFilters := params([]Param{
		intArg("committeeBusinessId", "CommitteeBusinessId", "Optional: committee business ID"),
		stringArg("searchTerm", "SearchTerm", "Optional: search event titles and content"),
		dateArg("startDateFrom", "StartDateFrom", "Optional: YYYY-MM-DD"),
		dateArg("startDateTo", "StartDateTo", "Optional: YYYY-MM-DD"),
		dateArg("endDateFrom", "EndDateFrom", "Optional: YYYY-MM-DD"),
		intArg("locationId", "LocationId", "Optional: location ID"),
		boolArg("excludeCancelledEvents", "ExcludeCancelledEvents", "Optional: leave out cancelled events"),
		boolArg("sortAscending", "SortAscending", "Optional: sort by date ascending"),
		intArg("eventTypeId", "EventTypeId", "Optional: event type ID"),
		boolArg("includeEventAttendees", "IncludeEventAttendees", "Include attendees in the response").withDefault("false"),
		onWebsiteOnly("ShowOnWebsiteOnly"),
	}, paging("Skip", "Take", "30"))

	evidenceFilters := params([]Param{
		intArg("committeeBusinessId", "CommitteeBusinessId", "Optional: committee business ID"),
		intArg("committeeId", "CommitteeId", "Optional: committee ID"),
		stringArg("searchTerm", "SearchTerm", "Optional: search evidence text or witness names"),
		dateArg("startDate", "StartDate", "Optional: YYYY-MM-DD"),
		dateArg("endDate", "EndDate", "Optional: YYYY-MM-DD"),
		onWebsiteOnly("ShowOnWebsiteOnly"),
	}, paging("Skip", "Take", "30"))

	return []Tool{
		{
			Name:        "get_committee_meetings",
			Description: "Find Commons and Lords committee meetings and hearings in a date range.",
			API:         Committees,
			Path:        "/Broadcast/Meetings",
			Params: []Param{
				dateArg("fromdate", "FromDate", "Start date, YYYY-MM-DD").required(),
				dateArg("todate", "ToDate", "End date, YYYY-MM-DD").required(),
			},
		},
		{
			Name:        "search_committees",
			Description: "Search committees by name or subject area.",
			API:         Committees,
			Path:        "/Committees",
			Params: []Param{
				stringArg("searchTerm", "SearchTerm", "Committee name or subject, e.g. 'Treasury'").required(),
			},
		},
		{
			Name:        "get_committee_types",
			Description: "List committee types such as Select Committee or Public Bill Committee.",
			API:         Committees,
			Path:        "/CommitteeType",
		},
		{
			Name:        "get_committee_by_id",
			Description: "Get a committee's purpose, members, scrutinised departments and contact details.",
			API:         Committees,
			Path:        "/Committees/{committeeId}",
			Params: []Param{
				committeeID,
				boolArg("includeBanners", "includeBanners", "Include banner images").withDefault("false"),
				onWebsiteOnly("showOnWebsiteOnly"),
			},
		},
		{
			Name:        "get_events",
			Description: "Search committee events by committee, date, location or event type.",
			API:         Committees,
			Path:        "/Events",
			Params: params([]Param{
				intArg("committeeId", "CommitteeId", "Optional: committee ID"),
			}, eventFilters),
		},
		{
			Name:        "get_event_by_id",
			Description: "Get a committee event with its activities, attendees and related business.",
			API:         Committees,
			Path:        "/Events/{eventId}",
			Params: []Param{
				pathID("eventId", "Event ID"),
				onWebsiteOnly("showOnWebsiteOnly"),
			},
		},
		{
			Name:        "get_committee_events",
			Description: "List the events of one committee.",
			API:         Committees,
			Path:        "/Committees/{committeeId}/Events",
			Params:      params([]Param{committeeID}, eventFilters),
		},
		{
			Name:        "get_committee_members",
			Description: "List the members and lay members of a committee with their roles.",
			API:         Committees,
			Path:        "/Committees/{committeeId}/Members",
			Params: params([]Param{
				committeeID,
				stringArg("membershipStatus", "MembershipStatus", "Optional: 'Current' or 'Former'"),
				onWebsiteOnly("ShowOnWebsiteOnly"),
			}, paging("Skip", "Take", "30")),
		},
		{
			Name:        "get_publications",
			Description: "Search committee publications such as reports and government responses.",
			API:         Committees,
			Path:        "/Publications",
			Params: params([]Param{
				stringArg("searchTerm", "SearchTerm", "Optional: search publication titles and content"),
				dateArg("startDate", "StartDate", "Optional: YYYY-MM-DD"),
				dateArg("endDate", "EndDate", "Optional: YYYY-MM-DD"),
				intArg("committeeBusinessId", "CommitteeBusinessId", "Optional: committee business ID"),
				intArg("committeeId", "CommitteeId", "Optional: committee ID"),
				onWebsiteOnly("ShowOnWebsiteOnly"),
			}, paging("Skip", "Take", "30")),
		},
		{
			Name:        "get_publication_by_id",
			Description: "Get a committee publication with its documents and HC numbers.",
			API:         Committees,
			Path:        "/Publications/{publicationId}",
			Params: []Param{
				pathID("publicationId", "Publication ID"),
				onWebsiteOnly("showOnWebsiteOnly"),
			},
		},
		{
			Name:        "get_written_evidence",
			Description: "Search written evidence submitted to committee inquiries.",
			API:         Committees,
			Path:        "/WrittenEvidence",
			Params:      evidenceFilters,
		},
		{
			Name:        "get_oral_evidence",
			Description: "Search oral evidence sessions from committee hearings.",
			API:         Committees,
			Path:        "/OralEvidence",
			Params:      evidenceFilters,
		},
	}
}
