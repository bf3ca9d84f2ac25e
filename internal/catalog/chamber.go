package catalog

func nowTools() []Tool {
	return []Tool{
		{
			Name:        "happening_now_in_commons",
			Description: "Get the live annunciator message for the House of Commons chamber: current business, debates and votes.",
			API:         Now,
			Path:        "/Message/message/CommonsMain/current",
		},
		{
			Name:        "happening_now_in_lords",
			Description: "Get the live annunciator message for the House of Lords chamber: current business, debates and votes.",
			API:         Now,
			Path:        "/Message/message/LordsMain/current",
		},
	}
}

func hansardTools() []Tool {
	return []Tool{
		{
			Name:        "search_hansard",
			Description: "Search Hansard, the official record, for speeches and debates in a house and date range.",
			API:         Hansard,
			Path:        "/search.json",
			Params: []Param{
				intArg("house", "queryParameters.house", "1 for Commons, 2 for Lords").required(),
				dateArg("startDate", "queryParameters.startDate", "Start date, YYYY-MM-DD").required(),
				dateArg("endDate", "queryParameters.endDate", "End date, YYYY-MM-DD").required(),
				stringArg("searchTerm", "queryParameters.searchTerm", "Words to search for, e.g. 'NHS'").required(),
			},
		},
	}
}

func whatsOnTools() []Tool {
	houseRange := func() []Param {
		return []Param{
			stringArg("house", "queryParameters.house", "'Commons' or 'Lords'").required(),
			dateArg("startDate", "queryParameters.startDate", "Start date, YYYY-MM-DD").required(),
			dateArg("endDate", "queryParameters.endDate", "End date, YYYY-MM-DD").required(),
		}
	}

	return []Tool{
		{
			Name:        "search_calendar",
			Description: "Search the parliamentary calendar for scheduled business in either chamber.",
			API:         WhatsOn,
			Path:        "/events/list.json",
			Params:      houseRange(),
		},
		{
			Name:        "get_sessions",
			Description: "List parliamentary sessions and their dates.",
			API:         WhatsOn,
			Path:        "/sessions/list.json",
		},
		{
			Name:        "get_non_sitting_days",
			Description: "List recesses and other days when a house does not sit.",
			API:         WhatsOn,
			Path:        "/events/nonsitting.json",
			Params:      houseRange(),
		},
	}
}

func oralQuestionsTools() []Tool {
	return []Tool{
		{
			Name:        "get_recently_tabled_edms",
			Description: "List the most recently tabled Early Day Motions with sponsors, supporters and dates.",
			API:         OralQuestions,
			Path:        "/EarlyDayMotions/list",
			Params: []Param{
				fixed("parameters.orderBy", "DateTabledDesc"),
				fixed("skip", "0"),
				intArg("take", "take", "Number of motions to return, default 10").withDefault("10"),
			},
		},
		{
			Name:        "search_early_day_motions",
			Description: "Search Early Day Motions by topic or keyword.",
			API:         OralQuestions,
			Path:        "/EarlyDayMotions/list",
			Params: []Param{
				stringArg("searchTerm", "parameters.searchTerm", "Topic, e.g. 'NHS funding'").required(),
			},
		},
		{
			Name:        "search_oral_question_times",
			Description: "List when departments are scheduled to answer oral questions.",
			API:         OralQuestions,
			Path:        "/oralquestiontimes/list",
			Params: []Param{
				dateArg("answeringDateStart", "parameters.answeringDateStart", "Start date, YYYY-MM-DD").required(),
				dateArg("answeringDateEnd", "parameters.answeringDateEnd", "End date, YYYY-MM-DD").required(),
			},
		},
	}
}
