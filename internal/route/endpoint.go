package route

import (
	"net/http"
	"sort"
	"strings"
)

// Endpoint is a request handler with one method per HTTP verb. Each method
// reads whatever it needs from r (path, body, request context) and returns a
// JSON-serializable result.
//
// Endpoints that handle only some verbs embed Unsupported and override the
// rest.
type Endpoint interface {
	Get(r *http.Request) (any, error)
	Post(r *http.Request) (any, error)
	Put(r *http.Request) (any, error)
	Delete(r *http.Request) (any, error)
	Patch(r *http.Request) (any, error)
}

// Unsupported implements every Endpoint verb by returning
// ErrMethodNotSupported.
type Unsupported struct{}

func (Unsupported) Get(*http.Request) (any, error)    { return nil, ErrMethodNotSupported }
func (Unsupported) Post(*http.Request) (any, error)   { return nil, ErrMethodNotSupported }
func (Unsupported) Put(*http.Request) (any, error)    { return nil, ErrMethodNotSupported }
func (Unsupported) Delete(*http.Request) (any, error) { return nil, ErrMethodNotSupported }
func (Unsupported) Patch(*http.Request) (any, error)  { return nil, ErrMethodNotSupported }

// Invoke calls the method of e matching the verb of r. Verbs outside
// GET/POST/PUT/DELETE/PATCH yield ErrMethodNotSupported.
func Invoke(e Endpoint, r *http.Request) (any, error) {
	switch strings.ToUpper(r.Method) {
	case http.MethodGet:
		return e.Get(r)
	case http.MethodPost:
		return e.Post(r)
	case http.MethodPut:
		return e.Put(r)
	case http.MethodDelete:
		return e.Delete(r)
	case http.MethodPatch:
		return e.Patch(r)
	default:
		return nil, ErrMethodNotSupported
	}
}

// Catalog maps a handler reference, as written in the route configuration
// (e.g. "endpoint.Ping"), to the Endpoint serving it.
type Catalog map[string]Endpoint

// Resolve returns the Endpoint registered under ref.
func (c Catalog) Resolve(ref string) (Endpoint, bool) {
	e, ok := c[ref]
	return e, ok && e != nil
}

// References returns the registered handler references in sorted order.
func (c Catalog) References() []string {
	refs := make([]string, 0, len(c))
	for ref := range c {
		refs = append(refs, ref)
	}
	sort.Strings(refs)
	return refs
}
