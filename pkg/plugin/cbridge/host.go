package cbridge

/*
#include <string.h>
#include "lv2_bridge.h"

#define LV2GO_HOST_MAX_URIDS 64

// lv2go_host owns the features a minimal host passes to instantiate.
typedef struct {
    char* uris[LV2GO_HOST_MAX_URIDS];
    uint32_t count;
    int log_count;
    int32_t block_length;
    LV2_URID_Map map;
    LV2_Log_Log log;
    LV2_Options_Option options[2];
    LV2_Feature features[3];
    const LV2_Feature* feature_list[4];
} lv2go_host;

static LV2_URID lv2go_host_map(LV2_URID_Map_Handle handle, const char* uri) {
    lv2go_host* h = (lv2go_host*)handle;
    for (uint32_t i = 0; i < h->count; i++) {
        if (strcmp(h->uris[i], uri) == 0) {
            return i + 1;
        }
    }
    if (h->count == LV2GO_HOST_MAX_URIDS) {
        return 0;
    }
    h->uris[h->count] = strdup(uri);
    return ++h->count;
}

static int lv2go_host_printf(LV2_Log_Handle handle, LV2_URID type, const char* fmt, ...) {
    (void)type;
    (void)fmt;
    ((lv2go_host*)handle)->log_count++;
    return 0;
}

static lv2go_host* lv2go_host_new(int32_t block_length, int with_options) {
    lv2go_host* h = calloc(1, sizeof(lv2go_host));
    if (h == NULL) {
        return NULL;
    }
    h->block_length = block_length;
    h->map.handle = h;
    h->map.map = lv2go_host_map;
    h->log.handle = h;
    h->log.printf = lv2go_host_printf;

    h->options[0].key = lv2go_host_map(h, "http://lv2plug.in/ns/ext/buf-size#nominalBlockLength");
    h->options[0].size = sizeof(int32_t);
    h->options[0].type = lv2go_host_map(h, "http://lv2plug.in/ns/ext/atom#Int");
    h->options[0].value = &h->block_length;

    h->features[0].URI = "http://lv2plug.in/ns/ext/urid#map";
    h->features[0].data = &h->map;
    h->features[1].URI = "http://lv2plug.in/ns/ext/log#log";
    h->features[1].data = &h->log;
    h->features[2].URI = "http://lv2plug.in/ns/ext/options#options";
    h->features[2].data = h->options;

    int n = 0;
    h->feature_list[n++] = &h->features[0];
    h->feature_list[n++] = &h->features[1];
    if (with_options) {
        h->feature_list[n++] = &h->features[2];
    }
    h->feature_list[n] = NULL;
    return h;
}

static void lv2go_host_free(lv2go_host* h) {
    for (uint32_t i = 0; i < h->count; i++) {
        free(h->uris[i]);
    }
    free(h);
}

// Instances travel as integers: the plugin hands out small ids, not pointers.
static uintptr_t lv2go_host_instantiate(const LV2_Descriptor* d, lv2go_host* h, double rate, const char* bundle) {
    return (uintptr_t)d->instantiate(d, rate, bundle, h->feature_list);
}

static void lv2go_host_connect(const LV2_Descriptor* d, uintptr_t inst, uint32_t port, void* data) {
    d->connect_port((LV2_Handle)inst, port, data);
}

static void lv2go_host_activate(const LV2_Descriptor* d, uintptr_t inst) {
    d->activate((LV2_Handle)inst);
}

static void lv2go_host_run(const LV2_Descriptor* d, uintptr_t inst, uint32_t n) {
    d->run((LV2_Handle)inst, n);
}

static void lv2go_host_deactivate(const LV2_Descriptor* d, uintptr_t inst) {
    d->deactivate((LV2_Handle)inst);
}

static void lv2go_host_cleanup(const LV2_Descriptor* d, uintptr_t inst) {
    d->cleanup((LV2_Handle)inst);
}

static int lv2go_host_has_extension(const LV2_Descriptor* d, const char* uri) {
    return d->extension_data(uri) != NULL;
}

static int lv2go_host_recall(const LV2_Descriptor* d, const char* library_path) {
    const LV2GO_Recall* r = (const LV2GO_Recall*)d->extension_data(LV2GO_RECALL_URI);
    if (r == NULL || r->doRecall == NULL) {
        return -1;
    }
    return r->doRecall(library_path);
}
*/
import "C"
import (
	"unsafe"

	"github.com/justyntemme/lv2go/pkg/lv2"
)

// host loads the exported descriptor the way an LV2 host does: through
// lv2_descriptor and the C function table, with C-allocated features and
// port memory.
type host struct {
	h       *C.lv2go_host
	d       *C.LV2_Descriptor
	buffers []unsafe.Pointer
}

// newHost returns nil when lv2_descriptor(0) has no plugin to serve.
func newHost(blockLength int32, withOptions bool) *host {
	d := C.lv2_descriptor(0)
	if d == nil {
		return nil
	}
	opts := C.int(0)
	if withOptions {
		opts = 1
	}
	return &host{h: C.lv2go_host_new(C.int32_t(blockLength), opts), d: d}
}

// descriptorCount counts the descriptors lv2_descriptor hands out.
func descriptorCount() int {
	n := 0
	for C.lv2_descriptor(C.uint32_t(n)) != nil {
		n++
	}
	return n
}

func (h *host) uri() string {
	return C.GoString(h.d.URI)
}

func (h *host) logCount() int {
	return int(h.h.log_count)
}

// features converts the host's feature array the way instantiate does.
func (h *host) features() []lv2.Feature {
	return hostFeatures((**C.LV2_Feature)(unsafe.Pointer(&h.h.feature_list[0])))
}

// buffer allocates n frames of port memory in C. It lives until close.
func (h *host) buffer(n int) []float32 {
	p := C.calloc(C.size_t(n), C.size_t(unsafe.Sizeof(float32(0))))
	h.buffers = append(h.buffers, p)
	return unsafe.Slice((*float32)(p), n)
}

func (h *host) instantiate(sampleRate float64, bundle string) uintptr {
	cbundle := C.CString(bundle)
	defer C.free(unsafe.Pointer(cbundle))
	return uintptr(C.lv2go_host_instantiate(h.d, h.h, C.double(sampleRate), cbundle))
}

func (h *host) connect(inst uintptr, port uint32, data []float32) {
	C.lv2go_host_connect(h.d, C.uintptr_t(inst), C.uint32_t(port), unsafe.Pointer(&data[0]))
}

func (h *host) activate(inst uintptr)   { C.lv2go_host_activate(h.d, C.uintptr_t(inst)) }
func (h *host) deactivate(inst uintptr) { C.lv2go_host_deactivate(h.d, C.uintptr_t(inst)) }
func (h *host) cleanup(inst uintptr)    { C.lv2go_host_cleanup(h.d, C.uintptr_t(inst)) }

func (h *host) run(inst uintptr, n uint32) {
	C.lv2go_host_run(h.d, C.uintptr_t(inst), C.uint32_t(n))
}

func (h *host) hasExtension(uri string) bool {
	curi := C.CString(uri)
	defer C.free(unsafe.Pointer(curi))
	return C.lv2go_host_has_extension(h.d, curi) != 0
}

// recall calls doRecall through the struct returned by extension_data, or
// returns -1 when the extension is missing.
func (h *host) recall(libraryPath string) int {
	cpath := C.CString(libraryPath)
	defer C.free(unsafe.Pointer(cpath))
	return int(C.lv2go_host_recall(h.d, cpath))
}

func (h *host) close() {
	for _, p := range h.buffers {
		C.free(p)
	}
	h.buffers = nil
	C.lv2go_host_free(h.h)
	h.h = nil
}
