package tool

const (
	ToolGetMenu               = "get_menu"
	ToolCheckItemAvailability = "check_item_availability"
	ToolPlaceOrder            = "place_order"
	ToolMakeReservation       = "make_reservation"
)

type ParamType string

const (
	ParamString  ParamType = "string"
	ParamInteger ParamType = "integer"
	ParamArray   ParamType = "array"
)

type Param struct {
	Name     string
	Type     ParamType
	ElemType ParamType
	Desc     string
	Required bool
}

// Definition describes a tool to any agent runtime: name, purpose and typed
// parameters. It carries no binding to a particular framework.
type Definition struct {
	Name   string
	Desc   string
	Params []Param
}

func Definitions() []Definition {
	return []Definition{
		{
			Name: ToolGetMenu,
			Desc: "Gets the cafe menu. You can optionally pass a category like 'vegetarian', 'vegan', 'drink', or 'main'.",
			Params: []Param{
				{Name: "category", Type: ParamString, Desc: "Optional menu tag to filter by"},
			},
		},
		{
			Name: ToolCheckItemAvailability,
			Desc: "Checks if a specific menu item is in stock using its short ID (e.g. 'samosa' or 'butter_chicken').",
			Params: []Param{
				{Name: "item_id", Type: ParamString, Desc: "Short menu item ID", Required: true},
			},
		},
		{
			Name: ToolPlaceOrder,
			Desc: "Places a new food order. Pass the customer name and a list of item short IDs.",
			Params: []Param{
				{Name: "customer_name", Type: ParamString, Desc: "Name of the customer", Required: true},
				{Name: "item_ids", Type: ParamArray, ElemType: ParamString, Desc: "Short IDs of the ordered items", Required: true},
			},
		},
		{
			Name: ToolMakeReservation,
			Desc: "Books a table reservation. Provide the customer name, the requested date/time (e.g., 'Tonight at 7PM'), and the number of people.",
			Params: []Param{
				{Name: "customer_name", Type: ParamString, Desc: "Name of the customer", Required: true},
				{Name: "date_time", Type: ParamString, Desc: "Requested date and time, free text", Required: true},
				{Name: "party_size", Type: ParamInteger, Desc: "Number of people", Required: true},
			},
		},
	}
}
