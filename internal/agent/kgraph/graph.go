// Package kgraph holds the visa requirement lookup: a two-level adjacency map
// from origin code to destination code to the requirement on that directed
// edge. Built once from the dataset at startup, immutable afterwards, so any
// number of sessions can read it without locking.
package kgraph

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rehman-travels/visabot/server/internal/agent/model"
	"github.com/rehman-travels/visabot/server/internal/agent/registry"
	logx "github.com/rehman-travels/visabot/server/pkg/logger"
)

// Row is one dataset record: a passport country, a destination country, and
// the raw requirement string between them.
type Row struct {
	Passport    string
	Destination string
	Requirement string
}

type Graph struct {
	reg   *registry.Registry
	edges map[model.CountryCode]map[model.CountryCode]model.VisaRequirement
	rows  int
}

// Build constructs the graph from dataset rows. Self-pairs and "-1" sentinel
// rows are dropped; every kept row gets a requirement classified into the
// closed type enumeration. Not on the request path.
func Build(reg *registry.Registry, rows []Row) *Graph {
	g := &Graph{
		reg:   reg,
		edges: make(map[model.CountryCode]map[model.CountryCode]model.VisaRequirement),
	}

	skipped := 0
	for _, row := range rows {
		origin := model.CountryCode(strings.ToUpper(strings.TrimSpace(row.Passport)))
		destination := model.CountryCode(strings.ToUpper(strings.TrimSpace(row.Destination)))
		raw := strings.TrimSpace(row.Requirement)

		if origin == destination || raw == "-1" || origin == "" || destination == "" {
			skipped++
			continue
		}

		byDest, ok := g.edges[origin]
		if !ok {
			byDest = make(map[model.CountryCode]model.VisaRequirement)
			g.edges[origin] = byDest
		}
		byDest[destination] = parseRequirement(raw)
		g.rows++
	}

	logx.Info().
		Int("edges", g.rows).
		Int("skipped", skipped).
		Int("origins", len(g.edges)).
		Msg("knowledge graph built")
	return g
}

// Query answers "does a traveller from origin need a visa for destination".
// Both arguments may be canonical codes, full names, or aliases. Absent edges
// and same-country queries come back as found=false with a diagnostic, never
// an error.
func (g *Graph) Query(origin, destination string) model.QueryResult {
	originCode, ok := g.resolve(origin)
	if !ok {
		return model.QueryResult{Error: fmt.Sprintf("unknown origin country: %s", origin)}
	}
	destinationCode, ok := g.resolve(destination)
	if !ok {
		return model.QueryResult{Error: fmt.Sprintf("unknown destination country: %s", destination)}
	}

	res := model.QueryResult{
		Origin:          originCode,
		OriginName:      g.reg.NameOf(originCode),
		Destination:     destinationCode,
		DestinationName: g.reg.NameOf(destinationCode),
	}

	if originCode == destinationCode {
		res.Error = fmt.Sprintf("%s to %s is not a visa route", res.OriginName, res.DestinationName)
		return res
	}

	req, ok := g.edges[originCode][destinationCode]
	if !ok {
		res.Error = fmt.Sprintf("no visa data for %s to %s", res.OriginName, res.DestinationName)
		return res
	}

	res.Found = true
	res.Requirement = &req
	return res
}

// Destinations returns every destination reachable from origin, in no
// particular order.
func (g *Graph) Destinations(origin model.CountryCode) []model.CountryCode {
	byDest := g.edges[origin]
	out := make([]model.CountryCode, 0, len(byDest))
	for code := range byDest {
		out = append(out, code)
	}
	return out
}

// VisaFreeDestinations returns the destinations a passport can enter without
// an embassy-issued visa (visa-free, on-arrival, e-visa, or ETA).
func (g *Graph) VisaFreeDestinations(origin model.CountryCode) []model.CountryCode {
	var out []model.CountryCode
	for code, req := range g.edges[origin] {
		switch req.Type {
		case model.VisaFree, model.VisaOnArrival, model.EVisa, model.ETA:
			out = append(out, code)
		}
	}
	return out
}

// EdgeCount reports the number of directed edges kept at build time.
func (g *Graph) EdgeCount() int { return g.rows }

// resolve accepts a canonical code first, then falls back to names and
// aliases.
func (g *Graph) resolve(token string) (model.CountryCode, bool) {
	if code, ok := g.reg.ResolveCode(token); ok {
		return code, true
	}
	return g.reg.Resolve(token)
}

// parseRequirement classifies a raw dataset string. Bare integers mean
// visa-free stays of that many days; anything unrecognized is treated as
// visa-required, the conservative default.
func parseRequirement(raw string) model.VisaRequirement {
	req := model.VisaRequirement{Raw: raw}

	if days, err := strconv.Atoi(raw); err == nil && days > 0 {
		req.Type = model.VisaFree
		req.DaysAllowed = days
		return req
	}

	switch strings.ToLower(raw) {
	case "visa free", "visa-free", "visa free access":
		req.Type = model.VisaFree
	case "visa on arrival":
		req.Type = model.VisaOnArrival
	case "e-visa", "evisa", "e-visas":
		req.Type = model.EVisa
	case "eta", "electronic travel authorisation", "electronic travel authorization":
		req.Type = model.ETA
	case "visa required":
		req.Type = model.VisaRequired
	case "no admission", "covid ban":
		req.Type = model.NoAdmission
	default:
		req.Type = model.VisaRequired
	}
	return req
}
