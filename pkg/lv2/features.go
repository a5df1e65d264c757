package lv2

import (
	"unsafe"
)

// URID is an integer handle for a URI, as assigned by the host's urid:map.
type URID uint32

// URIDMap maps URIs to URIDs. The C bridge wraps the host's LV2_URID_Map.
type URIDMap interface {
	Map(uri string) URID
}

// Feature is a host feature passed to instantiate. Data holds the Go view of
// the feature: URIDMap for urid:map, []Option for opts:options and Log for
// log:log. Unknown features keep the raw pointer.
type Feature struct {
	URI  string
	Data interface{}
}

// Option is one entry of the host options table.
type Option struct {
	Context uint32
	Subject uint32
	Key     URID
	Size    uint32
	Type    URID
	Value   unsafe.Pointer
}

// FeatureQuery describes one feature lookup for QueryFeatures.
type FeatureQuery struct {
	URI      string
	Required bool
	Found    func(data interface{})
}

// QueryFeatures walks the host feature list and hands each requested feature
// to its Found callback. It returns the URI of the first required feature the
// host did not provide, or "" when all required features are present.
func QueryFeatures(features []Feature, queries ...FeatureQuery) string {
	for _, q := range queries {
		found := false
		for _, f := range features {
			if f.URI != q.URI {
				continue
			}
			if q.Found != nil {
				q.Found(f.Data)
			}
			found = true
			break
		}
		if !found && q.Required {
			return q.URI
		}
	}
	return ""
}

// NominalBlockLength scans the options table for bufs:nominalBlockLength with
// type atom:Int. It returns 0 when the option is absent.
func NominalBlockLength(options []Option, uridMap URIDMap) int32 {
	if uridMap == nil {
		return 0
	}

	key := uridMap.Map(NominalBlockLengthURI)
	intType := uridMap.Map(AtomIntURI)

	for _, opt := range options {
		if opt.Key == 0 && opt.Value == nil {
			break
		}
		if opt.Key == key && opt.Type == intType && opt.Value != nil {
			return *(*int32)(opt.Value)
		}
	}
	return 0
}

// StaticMap is an in-process URIDMap that assigns ids in first-seen order.
// Hosts written in Go and tests use it in place of a C map.
type StaticMap struct {
	ids map[string]URID
}

// NewStaticMap creates an empty map.
func NewStaticMap() *StaticMap {
	return &StaticMap{ids: make(map[string]URID)}
}

// Map implements URIDMap.
func (m *StaticMap) Map(uri string) URID {
	if id, ok := m.ids[uri]; ok {
		return id
	}
	id := URID(len(m.ids) + 1)
	m.ids[uri] = id
	return id
}
