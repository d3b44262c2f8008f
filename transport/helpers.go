package transport

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/bhrc-portal/constant"
	"github.com/muhammadheryan/bhrc-portal/model"
	utilsContext "github.com/muhammadheryan/bhrc-portal/utils/context"
	"github.com/muhammadheryan/bhrc-portal/utils/errors"
	"github.com/muhammadheryan/bhrc-portal/utils/querybuilder"
	"github.com/muhammadheryan/bhrc-portal/utils/response"
	validatorx "github.com/muhammadheryan/bhrc-portal/utils/validator"
)

const maxBodySize = 1 << 20

// bind decodes the JSON body into dst and validates it. On failure the response
// is already written and bind returns false.
func bind(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(dst); err != nil {
		response.Error(w, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("invalid JSON body"))
		return false
	}
	if fields := validatorx.Validate(dst); len(fields) > 0 {
		response.ValidationError(w, fields)
		return false
	}
	return true
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (uint64, bool) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil || id == 0 {
		response.Error(w, errors.SetCustomError(constant.ErrInvalidRequest).WithMessage("invalid "+name))
		return 0, false
	}
	return id, true
}

// principal is nil on public routes when no valid token was sent.
func principal(r *http.Request) *model.Principal {
	p, _ := utilsContext.GetPrincipal(r.Context())
	return p
}

func listQuery(r *http.Request) model.ListQuery {
	q := r.URL.Query()
	page := querybuilder.PageFromValues(q)
	return model.ListQuery{
		Page:     page.Number,
		PerPage:  page.PerPage,
		Search:   strings.TrimSpace(q.Get("search")),
		SortBy:   q.Get("sort_by"),
		SortDir:  q.Get("sort_order"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
}

func queryUint(r *http.Request, key string) uint64 {
	v, _ := strconv.ParseUint(r.URL.Query().Get(key), 10, 64)
	return v
}

func queryFloat(r *http.Request, key string) float64 {
	v, _ := strconv.ParseFloat(r.URL.Query().Get(key), 64)
	return v
}

// clientIP returns the address resolved by ClientIPMiddleware, or the peer address.
func clientIP(r *http.Request) string {
	if ip, ok := utilsContext.GetClientIP(r.Context()); ok {
		return ip
	}
	return peerIP(r)
}

func peerIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func list[T any](w http.ResponseWriter, res *model.ListResponse[T], err error) {
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Paginated(w, res.Items, res.Pagination, "")
}

func ok(w http.ResponseWriter, data any, err error) {
	if err != nil {
		response.Error(w, err)
		return
	}
	response.Success(w, data, "")
}
