package headers

import (
	"sort"
	"strings"
)

// Headers is a case-insensitive multimap of header fields. Names are stored
// lowercased and repeated fields are folded into one comma separated value.
type Headers struct {
	fields map[string]string
}

func New() *Headers {
	return &Headers{
		fields: make(map[string]string, 16),
	}
}

func (h *Headers) Get(name string) (string, bool) {
	val, ok := h.fields[strings.ToLower(name)]
	return val, ok
}

func (h *Headers) Value(name string) string {
	val, _ := h.Get(name)
	return val
}

func (h *Headers) Set(name, value string) {
	key := strings.ToLower(name)
	if existing, ok := h.fields[key]; ok {
		h.fields[key] = existing + ", " + value
		return
	}
	h.fields[key] = value
}

func (h *Headers) Replace(name, value string) {
	h.fields[strings.ToLower(name)] = value
}

func (h *Headers) Remove(name string) {
	delete(h.fields, strings.ToLower(name))
}

func (h *Headers) Len() int {
	return len(h.fields)
}

// Names returns the stored field names in lexical order.
func (h *Headers) Names() []string {
	names := make([]string, 0, len(h.fields))
	for name := range h.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (h *Headers) ForEach(fn func(name, value string)) {
	for _, name := range h.Names() {
		fn(name, h.fields[name])
	}
}
