package httpx

import (
	"regexp"
	"strconv"
)

type Operation int

const (
	OpNotFound Operation = iota
	OpLatest
	OpRandom
	OpComic
	OpCacheStats
	OpCacheClear
)

// Resolved describes the logical endpoint a request path maps to, together
// with the comic number when one was extracted from the path.
type Resolved struct {
	Op       Operation
	ComicNum int
}

type matcher interface {
	match(path string) (Resolved, bool)
}

type exactRoute struct {
	paths []string
	op    Operation
}

func (r exactRoute) match(path string) (Resolved, bool) {
	for _, p := range r.paths {
		if path == p {
			return Resolved{Op: r.op}, true
		}
	}
	return Resolved{}, false
}

type patternRoute struct {
	re *regexp.Regexp
	op Operation
}

func (r patternRoute) match(path string) (Resolved, bool) {
	m := r.re.FindStringSubmatch(path)
	if m == nil {
		return Resolved{}, false
	}
	num, err := strconv.Atoi(m[1])
	if err != nil {
		return Resolved{}, false
	}
	return Resolved{Op: r.op, ComicNum: num}, true
}

// routes are evaluated in order; the first match wins. The numeric route
// accepts any digit sequence, "/0" included: the number is handed to the
// upstream untouched and a nonexistent comic fails there.
var routes = []matcher{
	exactRoute{paths: []string{"/", "/latest"}, op: OpLatest},
	exactRoute{paths: []string{"/random"}, op: OpRandom},
	exactRoute{paths: []string{"/cache/stats"}, op: OpCacheStats},
	exactRoute{paths: []string{"/cache/clear"}, op: OpCacheClear},
	patternRoute{re: regexp.MustCompile(`^/(\d+)$`), op: OpComic},
}

func Resolve(path string) Resolved {
	for _, route := range routes {
		if resolved, ok := route.match(path); ok {
			return resolved
		}
	}
	return Resolved{Op: OpNotFound}
}
