package constant

// Catalog script globals - a Lua catalog must define these.
const (
	CatalogTitleGlobal = "Title"
	CatalogSeasonsFn   = "Seasons"
)
