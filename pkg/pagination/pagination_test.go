package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Limit != DefaultLimit || p.Offset != 0 {
		t.Errorf("FromContext() = %+v, want limit %d offset 0", p, DefaultLimit)
	}
}

func TestFromContext_Clamps(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=9999&offset=-4"))
	if p.Limit != MaxLimit {
		t.Errorf("Limit = %d, want %d", p.Limit, MaxLimit)
	}
	if p.Offset != 0 {
		t.Errorf("Offset = %d, want 0", p.Offset)
	}
}

func TestBounds(t *testing.T) {
	cases := []struct {
		p        Params
		total    int
		lo, hi   int
	}{
		{Params{Limit: 10, Offset: 0}, 25, 0, 10},
		{Params{Limit: 10, Offset: 20}, 25, 20, 25},
		{Params{Limit: 10, Offset: 30}, 25, 25, 25},
		{Params{Limit: 10, Offset: 0}, 0, 0, 0},
	}
	for _, c := range cases {
		lo, hi := c.p.Bounds(c.total)
		if lo != c.lo || hi != c.hi {
			t.Errorf("Bounds(%d) with %+v = (%d, %d), want (%d, %d)", c.total, c.p, lo, hi, c.lo, c.hi)
		}
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 50, 20, 20)
	if !r.HasMore {
		t.Error("HasMore = false, want true at offset 20 of 50")
	}
	r = NewResponse(nil, 50, 20, 40)
	if r.HasMore {
		t.Error("HasMore = true, want false at offset 40 of 50")
	}
}
