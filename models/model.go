package models

import "math"

// SafeID reports whether id fits the remote integer id column.
func SafeID(id int64) bool {
	return id >= 1 && id <= math.MaxInt32
}

// ToID narrows an in-memory id; ids outside the column range map to 0.
func ToID(id int64) int32 {
	if !SafeID(id) {
		return 0
	}
	return int32(id)
}

func toIDs(ids []int64) []int32 {
	out := make([]int32, 0, len(ids))
	for _, id := range ids {
		out = append(out, ToID(id))
	}
	return out
}

func fromIDs(ids []int32) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		out = append(out, int64(id))
	}
	return out
}

// All lists every remote row type for AutoMigrate.
func All() []any {
	return []any{
		&Category{}, &Additional{}, &Product{}, &Order{},
		&CarouselSlide{}, &Phrase{}, &StoreConfig{}, &PageContent{}, &Notification{},
	}
}
