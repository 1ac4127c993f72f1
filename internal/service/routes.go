package service

import (
	"net/url"
	"strings"

	"github.com/MKhiriev/krooster-proxy/internal/config"
)

// Route names, also used as metric and log labels.
const (
	RouteAccounts  = "krooster_accounts"
	RouteOperators = "krooster_operators"
	RouteSheet     = "sheet"
)

const apiKeyHeader = "apikey"

// Params holds the inbound query values substituted into a route template.
// A missing key is substituted as an empty string.
type Params map[string]string

// Route is one configured instance of the generic forward operation: a
// target URL template plus the headers attached to every outbound call.
//
// Placeholders are written as {name}. Values substituted into the path are
// path-escaped and values substituted into the query are query-escaped, so
// plain identifiers appear in the outbound URL exactly as received.
type Route struct {
	Name     string
	Template string
	Headers  map[string]string
}

// BuildURL returns the outbound URL for params.
func (r Route) BuildURL(params Params) string {
	path, query, hasQuery := strings.Cut(r.Template, "?")

	path = substitute(path, params, url.PathEscape)
	if !hasQuery {
		return path
	}

	return path + "?" + substitute(query, params, url.QueryEscape)
}

func substitute(template string, params Params, escape func(string) string) string {
	var b strings.Builder
	b.Grow(len(template))

	for {
		start := strings.IndexByte(template, '{')
		if start < 0 {
			break
		}
		end := strings.IndexByte(template[start:], '}')
		if end < 0 {
			break
		}
		end += start

		b.WriteString(template[:start])
		b.WriteString(escape(params[template[start+1:end]]))
		template = template[end+1:]
	}
	b.WriteString(template)

	return b.String()
}

// AccountsRoute looks up one account row by username on the backend API.
func AccountsRoute(cfg config.Upstream) Route {
	return Route{
		Name:     RouteAccounts,
		Template: cfg.APIBase + "/krooster_accounts?select=*&username=eq.{username}&limit=1",
		Headers:  map[string]string{apiKeyHeader: cfg.APIKey},
	}
}

// OperatorsRoute lists the operator rows owned by a user on the backend API.
func OperatorsRoute(cfg config.Upstream) Route {
	return Route{
		Name:     RouteOperators,
		Template: cfg.APIBase + "/operators?select=*&user_id=eq.{userId}",
		Headers:  map[string]string{apiKeyHeader: cfg.APIKey},
	}
}

// SheetRoute exports one sheet tab of a public spreadsheet as gviz JSON.
// No credentials are attached.
func SheetRoute(cfg config.Upstream) Route {
	return Route{
		Name:     RouteSheet,
		Template: cfg.SheetsBase + "/spreadsheets/d/{id}/gviz/tq?tqx=out:json&tq&gid={gid}",
	}
}
