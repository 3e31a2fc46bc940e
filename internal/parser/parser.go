// Package parser implements the recursive-descent Blueprint parser: the
// family of mutually recursive section parsers (C6-C10 of the design)
// that consume a blockstream.Stream and build a blueprint.Blueprint,
// selected by the block classifier and backed by a shared Report and
// SymbolTable.
package parser

import (
	"github.com/zendesk/snowcrash/internal/blocklex"
	"github.com/zendesk/snowcrash/internal/blockstream"
	"github.com/zendesk/snowcrash/internal/blueprint"
	"github.com/zendesk/snowcrash/internal/report"
	"github.com/zendesk/snowcrash/internal/symboltable"
)

// ParseResult is the output of a top-level Parse call.
type ParseResult struct {
	Node      blueprint.Blueprint
	SourceMap *Node // populated iff ExportSourcemap was requested
	Report    *report.Report

	// Symbols is the symbol table this parse populated (presetSymbols,
	// copied, plus every model this document itself defined). Pass it
	// as the next parse's presetSymbols to detect a model redefined
	// with different content across a multi-document build.
	Symbols *symboltable.SymbolTable
}

// Parser threads the block stream, the shared report, the options, and
// the symbol table through every recursive call. No field here is
// global: a new Parser is built per top-level Parse invocation, so
// concurrent parses on disjoint inputs never share state.
type Parser struct {
	stream  *blockstream.Stream
	rep     *report.Report
	opts    Options
	symbols *symboltable.SymbolTable

	// terminated is set once an HRule has been consumed. Per grammar, an
	// HRule terminates its enclosing resource/action silently; every
	// ancestor loop checks this flag and stops scanning in turn, so
	// nothing after the HRule is visited (and nothing after it can draw
	// a spurious foreign-block warning).
	terminated bool
}

// Parse parses source as an API Blueprint document. presetSymbols, if
// non-nil, seeds the symbol table read-only (it is copied before any
// mutation) so repeated parses can detect a model name redefined across
// documents.
func Parse(source []byte, opts Options, presetSymbols *symboltable.SymbolTable) ParseResult {
	blocks := blocklex.Lex(source)
	rep := report.New()
	symbols := presetSymbols.Copy()
	prepassModels(source, blocks, rep, symbols)

	stream := blockstream.New(source, blocks)
	p := &Parser{
		stream:  stream,
		rep:     rep,
		opts:    opts,
		symbols: symbols,
	}

	bp, sm := p.parseBlueprint()

	return ParseResult{Node: bp, SourceMap: sm, Report: rep, Symbols: symbols}
}

// wantSourcemap reports whether the parser should build source-map
// nodes for the current parse.
func (p *Parser) wantSourcemap() bool {
	return p.opts.Has(ExportSourcemap)
}
