package types

// Collection names shared by the local store, exports and the migration.
const (
	CollectionCart           = "cart"
	CollectionProducts       = "products"
	CollectionCategories     = "categories"
	CollectionAdditionals    = "additionals"
	CollectionOrders         = "orders"
	CollectionCarouselSlides = "carouselSlides"
	CollectionPhrases        = "phrases"
	CollectionStoreConfig    = "storeConfig"
	CollectionPageContent    = "pageContent"
	CollectionNotifications  = "notifications"
)

// Snapshot is a full or partial copy of every collection. A nil field means
// the collection is absent; an empty slice means it is present and empty.
type Snapshot struct {
	Cart           []*CartItem      `json:"cart"`
	Products       []*Product       `json:"products"`
	Categories     []*Category      `json:"categories"`
	Additionals    []*Additional    `json:"additionals"`
	Orders         []*Order         `json:"orders"`
	CarouselSlides []*CarouselSlide `json:"carouselSlides"`
	Phrases        []*Phrase        `json:"phrases"`
	StoreConfig    *StoreConfig     `json:"storeConfig"`
	PageContent    []*PageContent   `json:"pageContent"`
	Notifications  []*Notification  `json:"notifications"`
}

// Collections lists the collections present in the snapshot.
func (s *Snapshot) Collections() []string {
	var out []string
	add := func(present bool, name string) {
		if present {
			out = append(out, name)
		}
	}
	add(s.Cart != nil, CollectionCart)
	add(s.Products != nil, CollectionProducts)
	add(s.Categories != nil, CollectionCategories)
	add(s.Additionals != nil, CollectionAdditionals)
	add(s.Orders != nil, CollectionOrders)
	add(s.CarouselSlides != nil, CollectionCarouselSlides)
	add(s.Phrases != nil, CollectionPhrases)
	add(s.StoreConfig != nil, CollectionStoreConfig)
	add(s.PageContent != nil, CollectionPageContent)
	add(s.Notifications != nil, CollectionNotifications)
	return out
}

// Len counts the records in the snapshot.
func (s *Snapshot) Len() int {
	n := len(s.Cart) + len(s.Products) + len(s.Categories) + len(s.Additionals) +
		len(s.Orders) + len(s.CarouselSlides) + len(s.Phrases) + len(s.PageContent) +
		len(s.Notifications)
	if s.StoreConfig != nil {
		n++
	}
	return n
}
