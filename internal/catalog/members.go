package catalog

const memberIDHint = "Parliament member ID, get it from a member search first"

func membersTools() []Tool {
	return []Tool{
		{
			Name:        "get_member_by_name",
			Description: "Search for MPs and Lords by full or partial name. Returns member profiles with names, parties, constituencies and current status, including former members.",
			API:         Members,
			Path:        "/Members/Search",
			Params: []Param{
				stringArg("name", "Name", "Full or partial name, e.g. 'Keir Starmer' or 'Smith'").required(),
			},
		},
		{
			Name:        "get_answering_bodies",
			Description: "List government departments acting as answering bodies for parliamentary questions.",
			API:         Members,
			Path:        "/Reference/AnsweringBodies",
		},
		{
			Name:        "get_member_by_id",
			Description: "Get the full profile of a member by ID: roles, constituency, party and career details.",
			API:         Members,
			Path:        "/Members/{id}",
			Params:      []Param{pathID("id", memberIDHint+", e.g. 1423")},
		},
		{
			Name:        "edms_for_member_id",
			Description: "List the Early Day Motions signed by a member.",
			API:         Members,
			Path:        "/Members/{memberid}/Edms",
			Params:      []Param{pathID("memberid", memberIDHint)},
		},
		{
			Name:        "parties_list_by_house",
			Description: "List the active political parties in the House of Commons (1) or House of Lords (2).",
			API:         Members,
			Path:        "/Parties/GetActive/{house}",
			Params:      []Param{pathID("house", "House number: 1 for Commons, 2 for Lords")},
		},
		{
			Name:        "get_departments",
			Description: "List all government departments.",
			API:         Members,
			Path:        "/Reference/Departments",
		},
		{
			Name:        "get_contributions",
			Description: "Summarise a member's parliamentary contributions such as speeches, questions and interventions.",
			API:         Members,
			Path:        "/Members/{memberid}/ContributionSummary",
			Params: []Param{
				pathID("memberid", memberIDHint),
				fixed("page", "1"),
			},
		},
		{
			Name:        "get_constituencies",
			Description: "List UK parliamentary constituencies with pagination.",
			API:         Members,
			Path:        "/Location/Constituency/Search",
			Params:      optionalPaging("skip", "take"),
		},
		{
			Name:        "get_election_results_for_constituency",
			Description: "Get historical election results for a constituency.",
			API:         Members,
			Path:        "/Location/Constituency/{constituencyid}/ElectionResults",
			Params:      []Param{pathID("constituencyid", "Constituency ID")},
		},
		{
			Name:        "get_lords_interests_staff",
			Description: "Search staff interests declared by members of the House of Lords.",
			API:         Members,
			Path:        "/LordsInterests/Staff",
			Params: []Param{
				stringArg("searchterm", "searchTerm", "Staff name or interest to search for").withDefault("richard"),
			},
		},
		{
			Name:        "get_members_biography",
			Description: "Get a member's biography: education, career timeline and political milestones.",
			API:         Members,
			Path:        "/Members/{memberId}/Biography",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_members_contact",
			Description: "Get a member's official contact details: phone numbers, email and office addresses.",
			API:         Members,
			Path:        "/Members/{memberId}/Contact",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "search_members",
			Description: "Search current MPs and Lords by name, location, party, constituency, gender, posts held, membership dates or policy interests.",
			API:         Members,
			Path:        "/Members/Search",
			Params: params([]Param{
				stringArg("name", "Name", "Optional: full or partial name"),
				stringArg("location", "Location", "Optional: location or constituency name"),
				stringArg("postTitle", "PostTitle", "Optional: post title, e.g. 'Minister'"),
				intArg("partyId", "PartyId", "Optional: party ID"),
				intArg("house", "House", "Optional: 1 for Commons, 2 for Lords"),
				intArg("constituencyId", "ConstituencyId", "Optional: constituency ID"),
				stringArg("nameStartsWith", "NameStartsWith", "Optional: leading letters of the name"),
				stringArg("gender", "Gender", "Optional: 'M' or 'F'"),
				dateArg("membershipStartedSince", "MembershipStartedSince", "Optional: YYYY-MM-DD"),
				dateArg("membershipEndedSince", "MembershipEnded.MembershipEndedSince", "Optional: YYYY-MM-DD"),
				dateArg("wasMemberOnOrAfter", "MembershipInDateRange.WasMemberOnOrAfter", "Optional: YYYY-MM-DD"),
				dateArg("wasMemberOnOrBefore", "MembershipInDateRange.WasMemberOnOrBefore", "Optional: YYYY-MM-DD"),
				intArg("wasMemberOfHouse", "MembershipInDateRange.WasMemberOfHouse", "Optional: 1 for Commons, 2 for Lords"),
				boolArg("isEligible", "IsEligible", "Optional: filter by eligibility"),
				boolArg("isCurrentMember", "IsCurrentMember", "Optional: filter by current membership"),
				intArg("policyInterestId", "PolicyInterestId", "Optional: policy interest ID"),
				stringArg("experience", "Experience", "Optional: professional experience search term"),
			}, paging("skip", "take", "20")),
		},
		{
			Name:        "search_members_historical",
			Description: "Search members who were active on a given date.",
			API:         Members,
			Path:        "/Members/SearchHistorical",
			Params: params([]Param{
				stringArg("name", "name", "Optional: full or partial name"),
				dateArg("dateToSearchFor", "dateToSearchFor", "Optional: YYYY-MM-DD"),
			}, paging("skip", "take", "20")),
		},
		{
			Name:        "get_member_experience",
			Description: "Get a member's professional experience and career before Parliament.",
			API:         Members,
			Path:        "/Members/{memberId}/Experience",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_member_focus",
			Description: "Get the policy areas a member focuses on.",
			API:         Members,
			Path:        "/Members/{memberId}/Focus",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_member_registered_interests",
			Description: "Get a member's registered interests such as directorships, consultancies and gifts.",
			API:         Members,
			Path:        "/Members/{memberId}/RegisteredInterests",
			Params: []Param{
				pathID("memberId", memberIDHint),
				intArg("house", "house", "Optional: 1 for Commons, 2 for Lords"),
			},
		},
		{
			Name:        "get_member_staff",
			Description: "List staff working for a member.",
			API:         Members,
			Path:        "/Members/{memberId}/Staff",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_member_synopsis",
			Description: "Get a short synopsis of a member.",
			API:         Members,
			Path:        "/Members/{memberId}/Synopsis",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_member_voting",
			Description: "Get a member's voting record in one house.",
			API:         Members,
			Path:        "/Members/{memberId}/Voting",
			Params: []Param{
				pathID("memberId", memberIDHint),
				intArg("house", "house", "1 for Commons, 2 for Lords").required(),
				intArg("page", "page", "Optional: page number"),
			},
		},
		{
			Name:        "get_member_written_questions",
			Description: "List written questions submitted by a member.",
			API:         Members,
			Path:        "/Members/{memberId}/WrittenQuestions",
			Params: []Param{
				pathID("memberId", memberIDHint),
				intArg("page", "page", "Optional: page number"),
			},
		},
		{
			Name:        "get_members_history",
			Description: "Get name, party and membership history for several members at once.",
			API:         Members,
			Path:        "/Members/History",
			Params: []Param{
				idsArg("memberIds", "ids", "Array of Parliament member IDs").required(),
			},
		},
		{
			Name:        "get_member_latest_election_result",
			Description: "Get the latest election result for a member.",
			API:         Members,
			Path:        "/Members/{memberId}/LatestElectionResult",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_member_portrait_url",
			Description: "Get the URL of a member's official portrait.",
			API:         Members,
			Path:        "/Members/{memberId}/PortraitUrl",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
		{
			Name:        "get_member_thumbnail_url",
			Description: "Get the URL of a member's thumbnail photograph.",
			API:         Members,
			Path:        "/Members/{memberId}/ThumbnailUrl",
			Params:      []Param{pathID("memberId", memberIDHint)},
		},
	}
}
