// Package catalog declares every UK Parliament tool as data: a name, an upstream API,
// a path template and the ordered list of arguments that become path segments or
// query parameters.
package catalog

import (
	"fmt"
	"sort"
)

// API identifies one upstream UK Parliament service.
type API string

const (
	Members              API = "members"
	Bills                API = "bills"
	Committees           API = "committees"
	CommonsVotes         API = "commonsvotes"
	LordsVotes           API = "lordsvotes"
	Now                  API = "now"
	Treaties             API = "treaties"
	Hansard              API = "hansard"
	WhatsOn              API = "whatson"
	ErskineMay           API = "erskinemay"
	StatutoryInstruments API = "statutoryinstruments"
	Interests            API = "interests"
	OralQuestions        API = "oralquestions"
)

// BaseURLs maps each API to its public endpoint. The votes APIs are only served over http.
var BaseURLs = map[API]string{
	Members:              "https://members-api.parliament.uk/api",
	Bills:                "https://bills-api.parliament.uk/api/v1",
	Committees:           "https://committees-api.parliament.uk/api",
	CommonsVotes:         "http://commonsvotes-api.parliament.uk/data",
	LordsVotes:           "http://lordsvotes-api.parliament.uk/data",
	Now:                  "https://now-api.parliament.uk/api",
	Treaties:             "https://treaties-api.parliament.uk/api",
	Hansard:              "https://hansard-api.parliament.uk",
	WhatsOn:              "https://whatson-api.parliament.uk/calendar",
	ErskineMay:           "https://erskinemay-api.parliament.uk/api",
	StatutoryInstruments: "https://statutoryinstruments-api.parliament.uk/api/v2",
	Interests:            "https://interests-api.parliament.uk/api/v1",
	OralQuestions:        "https://oralquestionsandmotions-api.parliament.uk",
}

// Location says where an argument ends up in the request URL.
type Location int

const (
	InQuery Location = iota
	InPath
	// Fixed parameters are always sent and never exposed as tool arguments.
	Fixed
)

// Type is the JSON type a tool argument is declared with.
type Type string

const (
	String      Type = "string"
	Integer     Type = "integer"
	Boolean     Type = "boolean"
	IntegerList Type = "integer_list"
	// Date is a string argument that must parse as a calendar date.
	Date Type = "date"
)

// Param describes one tool argument or fixed query parameter.
type Param struct {
	// Name is the argument name seen by MCP clients.
	Name string
	// Key is the upstream path placeholder or query parameter name.
	Key         string
	In          Location
	Type        Type
	Required    bool
	Default     string
	Value       string
	Description string
}

// Tool is a single read-only endpoint.
type Tool struct {
	Name        string
	Description string
	API         API
	Path        string
	Params      []Param
}

// Arguments returns the parameters exposed to clients, excluding fixed ones.
func (t Tool) Arguments() []Param {
	args := make([]Param, 0, len(t.Params))
	for _, p := range t.Params {
		if p.In != Fixed {
			args = append(args, p)
		}
	}
	return args
}

// Catalog is an immutable, name-indexed set of tools.
type Catalog struct {
	tools  []Tool
	byName map[string]Tool
}

// New indexes tools by name. Duplicate names are rejected.
func New(tools ...Tool) (*Catalog, error) {
	c := &Catalog{
		tools:  make([]Tool, 0, len(tools)),
		byName: make(map[string]Tool, len(tools)),
	}
	for _, t := range tools {
		if _, exists := c.byName[t.Name]; exists {
			return nil, fmt.Errorf("duplicate tool name %q", t.Name)
		}
		if _, ok := BaseURLs[t.API]; !ok {
			return nil, fmt.Errorf("tool %q references unknown API %q", t.Name, t.API)
		}
		c.tools = append(c.tools, t)
		c.byName[t.Name] = t
	}
	return c, nil
}

// Default returns the full UK Parliament catalog.
func Default() *Catalog {
	c, err := New(All()...)
	if err != nil {
		panic(err)
	}
	return c
}

// All lists every endpoint tool grouped by API.
func All() []Tool {
	var tools []Tool
	tools = append(tools, membersTools()...)
	tools = append(tools, billsTools()...)
	tools = append(tools, committeesTools()...)
	tools = append(tools, commonsVotesTools()...)
	tools = append(tools, lordsVotesTools()...)
	tools = append(tools, nowTools()...)
	tools = append(tools, treatiesTools()...)
	tools = append(tools, hansardTools()...)
	tools = append(tools, whatsOnTools()...)
	tools = append(tools, erskineMayTools()...)
	tools = append(tools, statutoryInstrumentsTools()...)
	tools = append(tools, interestsTools()...)
	tools = append(tools, oralQuestionsTools()...)
	return tools
}

// Tools returns the tools in declaration order.
func (c *Catalog) Tools() []Tool {
	out := make([]Tool, len(c.tools))
	copy(out, c.tools)
	return out
}

// Lookup finds a tool by name.
func (c *Catalog) Lookup(name string) (Tool, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Names returns the sorted tool names.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.tools))
	for _, t := range c.tools {
		names = append(names, t.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

func pathID(name, description string) Param {
	return Param{Name: name, Key: name, In: InPath, Type: Integer, Required: true, Description: description}
}

func pathText(name, description string) Param {
	return Param{Name: name, Key: name, In: InPath, Type: String, Required: true, Description: description}
}

func stringArg(name, key, description string) Param {
	return Param{Name: name, Key: key, In: InQuery, Type: String, Description: description}
}

func dateArg(name, key, description string) Param {
	return Param{Name: name, Key: key, In: InQuery, Type: Date, Description: description}
}

func intArg(name, key, description string) Param {
	return Param{Name: name, Key: key, In: InQuery, Type: Integer, Description: description}
}

func boolArg(name, key, description string) Param {
	return Param{Name: name, Key: key, In: InQuery, Type: Boolean, Description: description}
}

func idsArg(name, key, description string) Param {
	return Param{Name: name, Key: key, In: InQuery, Type: IntegerList, Description: description}
}

func fixed(key, value string) Param {
	return Param{Name: key, Key: key, In: Fixed, Type: String, Value: value}
}

func (p Param) required() Param {
	p.Required = true
	return p
}

func (p Param) withDefault(value string) Param {
	p.Default = value
	return p
}

// paging returns the usual skip/take pair with the given default page size.
func paging(skipKey, takeKey, take string) []Param {
	return []Param{
		intArg("skip", skipKey, "Number of records to skip for pagination").withDefault("0"),
		intArg("take", takeKey, "Number of records to return, max 100").withDefault(take),
	}
}

// optionalPaging is paging without defaults.
func optionalPaging(skipKey, takeKey string) []Param {
	return []Param{
		intArg("skip", skipKey, "Optional: number of records to skip for pagination"),
		intArg("take", takeKey, "Optional: number of records to return"),
	}
}

func params(groups ...[]Param) []Param {
	var out []Param
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
