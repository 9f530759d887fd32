// Package models defines data structures for OMDb API responses.
package models

// OMDbSearchResponse is the body of GET /?s=<query>&page=<n>.
type OMDbSearchResponse struct {
	Response     string           `json:"Response"`
	Error        string           `json:"Error,omitempty"`
	Search       []OMDbSearchItem `json:"Search,omitempty"`
	TotalResults string           `json:"totalResults,omitempty"`
}

type OMDbSearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
	Poster string `json:"Poster"`
}

// OMDbTitleResponse is the body of GET /?i=<imdbID>&plot=full.
type OMDbTitleResponse struct {
	Response   string       `json:"Response"`
	Error      string       `json:"Error,omitempty"`
	Title      string       `json:"Title"`
	Year       string       `json:"Year"`
	Rated      string       `json:"Rated"`
	Released   string       `json:"Released"`
	Runtime    string       `json:"Runtime"`
	Genre      string       `json:"Genre"`
	Director   string       `json:"Director"`
	Writer     string       `json:"Writer"`
	Actors     string       `json:"Actors"`
	Plot       string       `json:"Plot"`
	Language   string       `json:"Language"`
	Country    string       `json:"Country"`
	Awards     string       `json:"Awards"`
	Poster     string       `json:"Poster"`
	Ratings    []OMDbRating `json:"Ratings"`
	Metascore  string       `json:"Metascore"`
	IMDbRating string       `json:"imdbRating"`
	IMDbVotes  string       `json:"imdbVotes"`
	IMDbID     string       `json:"imdbID"`
	Type       string       `json:"Type"`
	BoxOffice  string       `json:"BoxOffice"`
}

type OMDbRating struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// OK reports whether OMDb flagged the answer as a success.
func (r *OMDbSearchResponse) OK() bool { return r.Response == "True" }

// OK reports whether OMDb flagged the answer as a success.
func (r *OMDbTitleResponse) OK() bool { return r.Response == "True" }
