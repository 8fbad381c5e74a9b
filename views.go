package transitdemo

// View identifies one of the application's pages. Front-ends resolve a
// path to a view once and dispatch through it instead of matching URL
// strings ad hoc.
type View int

const (
	ViewHome View = iota
	ViewRoutes
	ViewSchedules
	ViewTickets
	ViewAdmin
	ViewLogin
)

var viewNames = map[View]string{
	ViewHome:      "home",
	ViewRoutes:    "routes",
	ViewSchedules: "schedules",
	ViewTickets:   "tickets",
	ViewAdmin:     "admin",
	ViewLogin:     "login",
}

var viewsByPath = map[string]View{
	"":          ViewHome,
	"home":      ViewHome,
	"index":     ViewHome,
	"routes":    ViewRoutes,
	"schedules": ViewSchedules,
	"tickets":   ViewTickets,
	"admin":     ViewAdmin,
	"login":     ViewLogin,
}

func (v View) String() string { return viewNames[v] }

// ResolveView maps a page path segment to its view identifier.
func ResolveView(path string) (View, bool) {
	v, ok := viewsByPath[path]
	return v, ok
}
