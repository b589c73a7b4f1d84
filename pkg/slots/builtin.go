package slots

func intPtr(v int) *int { return &v }

// builtinActionSchemas returns the slot surface of every built-in action.
// The map is rebuilt per call so override merging never mutates shared state.
func builtinActionSchemas() map[string]*ActionSchema {
	return map[string]*ActionSchema{
		"notion.page_create": {
			RequiredSlots: []string{"title"},
			OptionalSlots: []string{"parent_page_id", "content"},
			AutoFillSlots: []string{"content"},
			AskOrder:      []string{"title", "parent_page_id"},
			Aliases: map[string][]string{
				"title":          {"page_title", "제목"},
				"parent_page_id": {"parent_id", "상위페이지"},
				"content":        {"body", "내용"},
			},
			ValidationRules: map[string]*ValidationRule{
				"title": {
					Type:      "string",
					MinLength: intPtr(2),
					MaxLength: intPtr(100),
				},
				"parent_page_id": {
					Type:    "string",
					Pattern: `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
				},
			},
		},
		"notion.page_update": {
			RequiredSlots: []string{"page_id"},
			OptionalSlots: []string{"title", "archived"},
			AskOrder:      []string{"page_id", "title"},
			Aliases: map[string][]string{
				"page_id": {"id", "페이지"},
				"title":   {"new_title", "새제목"},
			},
			ValidationRules: map[string]*ValidationRule{
				"page_id": {
					Type:    "string",
					Pattern: `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
				},
				"title": {
					Type:      "string",
					MaxLength: intPtr(100),
				},
				"archived": {
					Type: "boolean",
				},
			},
		},
		"notion.block_append": {
			RequiredSlots: []string{"page_id", "content"},
			AskOrder:      []string{"page_id", "content"},
			Aliases: map[string][]string{
				"page_id": {"id", "페이지"},
				"content": {"body", "text", "내용"},
			},
			ValidationRules: map[string]*ValidationRule{
				"page_id": {
					Type:    "string",
					Pattern: `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
				},
				"content": {
					Type:      "string",
					MinLength: intPtr(1),
					MaxLength: intPtr(5000),
				},
			},
		},
		"notion.data_source_query": {
			RequiredSlots: []string{"data_source_id"},
			OptionalSlots: []string{"page_size", "filter"},
			AskOrder:      []string{"data_source_id"},
			Aliases: map[string][]string{
				"data_source_id": {"database_id", "datasource_id", "데이터소스"},
				"page_size":      {"limit", "count"},
			},
			ValidationRules: map[string]*ValidationRule{
				"data_source_id": {
					Type:    "string",
					Pattern: `^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`,
				},
				"page_size": {
					Type: "integer",
					Min:  intPtr(1),
					Max:  intPtr(50),
				},
			},
		},
		"linear.issue_create": {
			RequiredSlots: []string{"title"},
			OptionalSlots: []string{"team_id", "description", "priority"},
			AutoFillSlots: []string{"description"},
			AskOrder:      []string{"title", "team_id"},
			Aliases: map[string][]string{
				"title":       {"issue_title", "제목"},
				"description": {"body", "desc", "설명"},
				"priority":    {"prio", "우선순위"},
			},
			ValidationRules: map[string]*ValidationRule{
				"title": {
					Type:      "string",
					MinLength: intPtr(2),
					MaxLength: intPtr(200),
				},
				"description": {
					Type:      "string",
					MaxLength: intPtr(5000),
				},
				"priority": {
					Type: "integer",
					Enum: []any{0, 1, 2, 3, 4},
				},
			},
		},
		"linear.issue_update": {
			RequiredSlots: []string{"issue_id"},
			OptionalSlots: []string{"title", "description", "priority", "state"},
			AskOrder:      []string{"issue_id"},
			Aliases: map[string][]string{
				"issue_id":    {"id", "이슈"},
				"title":       {"new_title", "새제목"},
				"description": {"body", "설명"},
				"priority":    {"prio", "우선순위"},
			},
			ValidationRules: map[string]*ValidationRule{
				"issue_id": {
					Type:    "string",
					Pattern: `^[A-Z]{2,10}-\d{1,6}$`,
				},
				"title": {
					Type:      "string",
					MaxLength: intPtr(120),
				},
				"description": {
					Type:      "string",
					MaxLength: intPtr(5000),
				},
				"priority": {
					Type: "integer",
					Min:  intPtr(0),
					Max:  intPtr(4),
				},
			},
		},
		"google.calendar_list": {
			RequiredSlots: []string{},
			OptionalSlots: []string{"time_min", "time_max", "max_results"},
			Aliases: map[string][]string{
				"max_results": {"limit", "count"},
			},
			ValidationRules: map[string]*ValidationRule{
				"max_results": {
					Type: "integer",
					Min:  intPtr(1),
					Max:  intPtr(100),
				},
			},
		},
	}
}
