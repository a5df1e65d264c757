package cbridge

// #include "lv2_bridge.h"
import "C"
import (
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/lv2"
)

// hostMap calls the host's LV2_URID_Map.
type hostMap struct {
	m *C.LV2_URID_Map
}

func (h hostMap) Map(uri string) lv2.URID {
	curi := C.CString(uri)
	defer C.free(unsafe.Pointer(curi))
	return lv2.URID(C.lv2go_map(h.m, curi))
}

// hostLog calls the host's LV2_Log_Log.
type hostLog struct {
	l *C.LV2_Log_Log
}

func (h hostLog) Printf(typ lv2.URID, msg string) {
	cmsg := C.CString(msg)
	defer C.free(unsafe.Pointer(cmsg))
	C.lv2go_log(h.l, C.LV2_URID(typ), cmsg)
}

// hostFeatures converts the null-terminated feature array passed to
// instantiate. urid:map, log:log and opts:options get Go views; every other
// feature keeps its raw data pointer.
func hostFeatures(features **C.LV2_Feature) []lv2.Feature {
	if features == nil {
		return nil
	}

	var result []lv2.Feature
	for i := 0; ; i++ {
		f := C.lv2go_feature_at(features, C.int(i))
		if f == nil {
			break
		}

		uri := C.GoString(f.URI)
		switch uri {
		case lv2.URIDMapURI:
			result = append(result, lv2.Feature{URI: uri, Data: hostMap{m: (*C.LV2_URID_Map)(f.data)}})
		case lv2.LogURI:
			result = append(result, lv2.Feature{URI: uri, Data: hostLog{l: (*C.LV2_Log_Log)(f.data)}})
		case lv2.OptionsURI:
			result = append(result, lv2.Feature{URI: uri, Data: hostOptions((*C.LV2_Options_Option)(f.data))})
		default:
			result = append(result, lv2.Feature{URI: uri, Data: f.data})
		}
	}
	return result
}

// hostOptions copies the options table up to and including its zero
// terminator. Values still point into host memory.
func hostOptions(options *C.LV2_Options_Option) []lv2.Option {
	if options == nil {
		return nil
	}

	var result []lv2.Option
	for i := 0; ; i++ {
		o := C.lv2go_option_at(options, C.int(i))
		opt := lv2.Option{
			Context: uint32(o.context),
			Subject: uint32(o.subject),
			Key:     lv2.URID(o.key),
			Size:    uint32(o.size),
			Type:    lv2.URID(o._type),
			Value:   unsafe.Pointer(o.value),
		}
		result = append(result, opt)
		if opt.Key == 0 && opt.Value == nil {
			break
		}
	}
	return result
}
