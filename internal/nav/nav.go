package nav

import "strings"

type Item struct {
	Label string
	Href  string
}

// IsAnchor reports whether the item scrolls to a section of the home page.
func (i Item) IsAnchor() bool {
	return strings.HasPrefix(i.Href, "#")
}

// Link resolves the href for the current page. Anchors stay in-page on home and
// navigate back to home from anywhere else.
func (i Item) Link(onHome bool) string {
	if i.IsAnchor() && !onHome {
		return "/" + i.Href
	}
	return i.Href
}

func IsHome(path string) bool {
	return path == "" || path == "/" || strings.HasPrefix(path, "/#")
}

var homeAnchors = []Item{
	{Label: "Home", Href: "#home"},
	{Label: "About", Href: "#about"},
	{Label: "Skills", Href: "#skills"},
	{Label: "Top Projects", Href: "#projects"},
	{Label: "Contact", Href: "#contact"},
}

var pages = []Item{
	{Label: "Projects", Href: "/projects"},
	{Label: "Blogs", Href: "/blogs"},
}

// Items returns the navigation entries for path. The last entry is Dashboard when
// signedOn and Login otherwise.
func Items(path string, signedOn bool) []Item {
	items := make([]Item, 0, len(homeAnchors)+len(pages)+2)
	if IsHome(path) {
		items = append(items, homeAnchors...)
	} else {
		items = append(items, Item{Label: "Home", Href: "/"})
	}
	items = append(items, pages...)
	if signedOn {
		return append(items, Item{Label: "Dashboard", Href: "/dashboard"})
	}
	return append(items, Item{Label: "Login", Href: "/login"})
}

// SeparatorIndex is the index of the last anchor entry, after which the menu draws
// a divider. It is -1 when there are no anchors.
func SeparatorIndex(items []Item) int {
	idx := -1
	for i, item := range items {
		if item.IsAnchor() && (i == len(items)-1 || !items[i+1].IsAnchor()) {
			idx = i
		}
	}
	return idx
}

func Sidebar() []Item {
	return []Item{
		{Label: "Home", Href: "/dashboard"},
		{Label: "Users", Href: "/dashboard/users"},
		{Label: "Projects", Href: "/dashboard/projects"},
		{Label: "Blogs", Href: "/dashboard/blogs"},
		{Label: "About Me", Href: "/dashboard/about"},
	}
}

// Menu is what the layout templates render.
type Menu struct {
	Items     []Item
	Separator int
	OnHome    bool
	SignedOn  bool
	Current   string
}

func NewMenu(path string, signedOn bool) Menu {
	items := Items(path, signedOn)
	return Menu{
		Items:     items,
		Separator: SeparatorIndex(items),
		OnHome:    IsHome(path),
		SignedOn:  signedOn,
		Current:   path,
	}
}

// Active reports whether href is the current page or one of its parents in the sidebar.
func (m Menu) Active(href string) bool {
	if href == "/dashboard" {
		return m.Current == href
	}
	return m.Current == href || strings.HasPrefix(m.Current, href+"/")
}
