package models

// ResultItem is one title summary in a search page. Values are kept as
// received; PosterURL may hold the upstream "N/A" sentinel.
type ResultItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	PosterURL string `json:"posterUrl"`
	Kind      string `json:"kind"`
}

// ResultPage is the outcome of one successful search request.
type ResultPage struct {
	Items      []ResultItem `json:"items"`
	TotalCount int          `json:"totalCount"`
	PageNumber int          `json:"pageNumber"`
}

type Rating struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// DetailRecord is the full record for a single title. Text fields never hold
// an empty string or the upstream sentinel once normalized.
type DetailRecord struct {
	ResultItem
	Plot       string   `json:"plot"`
	Actors     string   `json:"actors"`
	Director   string   `json:"director"`
	Writer     string   `json:"writer"`
	Language   string   `json:"language"`
	Country    string   `json:"country"`
	Released   string   `json:"released"`
	Runtime    string   `json:"runtime"`
	Rated      string   `json:"rated"`
	Awards     string   `json:"awards"`
	BoxOffice  string   `json:"boxOffice"`
	IMDbRating string   `json:"imdbRating"`
	IMDbVotes  string   `json:"imdbVotes"`
	Metascore  string   `json:"metascore"`
	Genres     []string `json:"genres"`
	Ratings    []Rating `json:"ratings"`
	IMDbURL    string   `json:"imdbUrl"`
}

// SearchStatus is the outer state of a query lifecycle.
type SearchStatus string

const (
	StatusIdle         SearchStatus = "idle"
	StatusSearching    SearchStatus = "searching"
	StatusPopulated    SearchStatus = "populated"
	StatusEmpty        SearchStatus = "empty"
	StatusNetworkError SearchStatus = "network-error"
)

// SearchState is a point-in-time copy of the search controller's state.
type SearchState struct {
	Query        string       `json:"query"`
	Page         int          `json:"page"`
	Results      []ResultItem `json:"results"`
	TotalResults int          `json:"totalResults"`
	Status       SearchStatus `json:"status"`
	Loading      bool         `json:"loading"`
	LoadingMore  bool         `json:"loadingMore"`
	ErrorMessage string       `json:"error,omitempty"`
}

// HasMore reports whether another page can be requested.
func (s SearchState) HasMore() bool {
	return s.Status == StatusPopulated && len(s.Results) < s.TotalResults
}

// DetailState is a point-in-time copy of the detail viewer's state.
type DetailState struct {
	Selected *DetailRecord `json:"selected,omitempty"`
	Loading  bool          `json:"loading"`
	Notice   string        `json:"notice,omitempty"`
}

// Open reports whether a record is currently shown.
func (d DetailState) Open() bool { return d.Selected != nil }
