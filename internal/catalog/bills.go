package catalog

func billsTools() []Tool {
	billID := pathID("billId", "Bill ID")
	billStageID := pathID("billStageId", "Bill stage ID")

	stageItemFilters := func(noun string) []Param {
		return params([]Param{
			stringArg("searchTerm", "SearchTerm", "Optional: search the "+noun+" text"),
			stringArg("amendmentNumber", "AmendmentNumber", "Optional: amendment number"),
			stringArg("decision", "Decision", "Optional: decision status"),
			intArg("memberId", "MemberId", "Optional: ID of the proposing member"),
		}, optionalPaging("Skip", "Take"))
	}

	return []Tool{
		{
			Name:        "get_recently_updated_bills",
			Description: "List the most recently updated bills, newest first, with their stages, sponsors and status.",
			API:         Bills,
			Path:        "/Bills",
			Params: []Param{
				fixed("SortOrder", "DateUpdatedDescending"),
				fixed("skip", "0"),
				intArg("take", "take", "Number of bills to return, default 10").withDefault("10"),
			},
		},
		{
			Name:        "search_bills",
			Description: "Search bills by title, subject or keyword, optionally limited to a sponsoring member.",
			API:         Bills,
			Path:        "/Bills",
			Params: []Param{
				stringArg("searchTerm", "SearchTerm", "Search term, e.g. 'environment'").required(),
				intArg("memberId", "MemberId", "Optional: sponsoring member ID"),
			},
		},
		{
			Name:        "bill_types",
			Description: "List the types of bill that can be introduced, such as Government Bill or Private Member's Bill.",
			API:         Bills,
			Path:        "/BillTypes",
		},
		{
			Name:        "bill_stages",
			Description: "List every stage a bill can pass through, from First Reading to Royal Assent.",
			API:         Bills,
			Path:        "/Stages",
		},
		{
			Name:        "get_bill_by_id",
			Description: "Get a bill's title, sponsors, stages, summary and current status.",
			API:         Bills,
			Path:        "/Bills/{billId}",
			Params:      []Param{billID},
		},
		{
			Name:        "get_bill_stages",
			Description: "List the stages a bill has been through.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages",
			Params:      params([]Param{billID}, optionalPaging("Skip", "Take")),
		},
		{
			Name:        "get_bill_stage_details",
			Description: "Get details of one stage of a bill.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages/{billStageId}",
			Params:      []Param{billID, billStageID},
		},
		{
			Name:        "get_bill_stage_amendments",
			Description: "List amendments tabled at a bill stage.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages/{billStageId}/Amendments",
			Params:      params([]Param{billID, billStageID}, stageItemFilters("amendment")),
		},
		{
			Name:        "get_amendment_by_id",
			Description: "Get the text, sponsors, decision and explanatory notes of an amendment.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages/{billStageId}/Amendments/{amendmentId}",
			Params:      []Param{billID, billStageID, pathID("amendmentId", "Amendment ID")},
		},
		{
			Name:        "get_bill_stage_ping_pong_items",
			Description: "List ping pong items, the amendments and motions exchanged between the Houses, for a bill stage.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages/{billStageId}/PingPongItems",
			Params:      params([]Param{billID, billStageID}, stageItemFilters("ping pong item")),
		},
		{
			Name:        "get_ping_pong_item_by_id",
			Description: "Get one ping pong amendment or motion.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages/{billStageId}/PingPongItems/{pingPongItemId}",
			Params:      []Param{billID, billStageID, pathID("pingPongItemId", "Ping pong item ID")},
		},
		{
			Name:        "get_bill_publications",
			Description: "List documents published for a bill, such as explanatory notes and impact assessments.",
			API:         Bills,
			Path:        "/Bills/{billId}/Publications",
			Params:      []Param{billID},
		},
		{
			Name:        "get_bill_stage_publications",
			Description: "List documents published for a bill stage.",
			API:         Bills,
			Path:        "/Bills/{billId}/Stages/{stageId}/Publications",
			Params:      []Param{billID, pathID("stageId", "Stage ID")},
		},
		{
			Name:        "get_publication_document",
			Description: "Get file name, content type and size of a bill publication document.",
			API:         Bills,
			Path:        "/Publications/{publicationId}/Documents/{documentId}",
			Params:      []Param{pathID("publicationId", "Publication ID"), pathID("documentId", "Document ID")},
		},
		{
			Name:        "get_bill_news_articles",
			Description: "List news articles about a bill.",
			API:         Bills,
			Path:        "/Bills/{billId}/NewsArticles",
			Params:      params([]Param{billID}, optionalPaging("Skip", "Take")),
		},
		{
			Name:        "get_all_bills_rss",
			Description: "Get the RSS feed of all bills.",
			API:         Bills,
			Path:        "/Rss/allbills.rss",
		},
		{
			Name:        "get_public_bills_rss",
			Description: "Get the RSS feed of public bills.",
			API:         Bills,
			Path:        "/Rss/publicbills.rss",
		},
		{
			Name:        "get_private_bills_rss",
			Description: "Get the RSS feed of private bills.",
			API:         Bills,
			Path:        "/Rss/privatebills.rss",
		},
		{
			Name:        "get_bill_rss",
			Description: "Get the RSS feed for a single bill.",
			API:         Bills,
			Path:        "/Rss/Bills/{billId}.rss",
			Params:      []Param{billID},
		},
		{
			Name:        "get_publication_types",
			Description: "List the publication types that can be attached to bills.",
			API:         Bills,
			Path:        "/PublicationTypes",
			Params:      optionalPaging("Skip", "Take"),
		},
		{
			Name:        "get_sittings",
			Description: "List parliamentary sittings, optionally filtered by house and date range.",
			API:         Bills,
			Path:        "/Sittings",
			Params: params([]Param{
				stringArg("house", "House", "Optional: 'Commons' or 'Lords'"),
				dateArg("dateFrom", "DateFrom", "Optional: YYYY-MM-DD"),
				dateArg("dateTo", "DateTo", "Optional: YYYY-MM-DD"),
			}, optionalPaging("Skip", "Take")),
		},
	}
}
