package localdb

import "Storefront/types"

// Collection is a named record set and the record fields that form its key.
type Collection struct {
	Name    string
	KeyPath []string
}

type schemaVersion struct {
	number      uint64
	collections []Collection
}

var byID = []string{"id"}

// versions is append-only: an upgrade creates every collection introduced
// after the version found on disk.
var versions = []schemaVersion{
	{1, []Collection{
		{types.CollectionCart, []string{"productId", "size"}},
		{types.CollectionProducts, byID},
		{types.CollectionCategories, byID},
		{types.CollectionAdditionals, byID},
	}},
	{2, []Collection{
		{types.CollectionPhrases, byID},
		{types.CollectionOrders, byID},
		{types.CollectionCarouselSlides, byID},
		{types.CollectionStoreConfig, byID},
	}},
	{3, []Collection{
		{types.CollectionPageContent, byID},
		{types.CollectionNotifications, byID},
	}},
}

// Version is the schema version Initialize upgrades to.
var Version = versions[len(versions)-1].number
