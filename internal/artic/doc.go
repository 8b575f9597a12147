// Package artic is a thin client for the Art Institute of Chicago
// collections API. It fetches one page of artwork records at a time with
// a fixed field projection and optional sort parameter.
package artic
