package handlers

import (
	"html/template"
	"strings"

	"github.com/amaumene/moviehub/internal/search"
)

var templateFuncs = template.FuncMap{
	"poster": search.PosterOrPlaceholder,
	"nice":   search.Nice,
	"join":   strings.Join,
}

func parseTemplates() *template.Template {
	t := template.New("").Funcs(templateFuncs)
	template.Must(t.New("layout_head").Parse(layoutHead))
	template.Must(t.New("splash").Parse(splashPage))
	template.Must(t.New("login").Parse(loginPage))
	template.Must(t.New("search").Parse(searchPage))
	return t
}

const layoutHead = `<meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>MovieHUB</title>
  <link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;500;700&display=swap" rel="stylesheet">
  <style>
    :root {
      --primary-color: #e50914;
      --background-color: #141414;
      --card-color: #1f1f1f;
      --text-color: #f5f5f5;
      --muted-color: #9a9a9a;
    }
    * { box-sizing: border-box; }
    body {
      font-family: 'Roboto', sans-serif;
      background-color: var(--background-color);
      color: var(--text-color);
      margin: 0;
      min-height: 100vh;
    }
    .center {
      display: flex;
      flex-direction: column;
      align-items: center;
      justify-content: center;
      min-height: 100vh;
    }
    .brand { color: var(--primary-color); font-weight: 700; letter-spacing: 2px; }
    .panel {
      background-color: var(--card-color);
      border-radius: 8px;
      padding: 30px;
      max-width: 400px;
      width: 100%;
    }
    label { font-weight: 500; margin-top: 15px; display: block; }
    input {
      width: 100%;
      padding: 10px;
      border: 1px solid #333;
      border-radius: 4px;
      margin-top: 5px;
      font-size: 1rem;
      background: #2b2b2b;
      color: var(--text-color);
    }
    button {
      background-color: var(--primary-color);
      color: #fff;
      border: none;
      padding: 10px 18px;
      border-radius: 4px;
      font-size: 1rem;
      cursor: pointer;
    }
    .link { background: none; color: var(--muted-color); padding: 0; }
    .error { color: #ff6b6b; margin-top: 15px; }
    .muted { color: var(--muted-color); }
    header {
      display: flex;
      justify-content: space-between;
      align-items: center;
      padding: 15px 30px;
    }
    .search-bar { display: flex; gap: 10px; padding: 0 30px; }
    .search-bar input { margin-top: 0; }
    .grid {
      display: grid;
      grid-template-columns: repeat(auto-fill, minmax(180px, 1fr));
      gap: 20px;
      padding: 30px;
    }
    .card { background: var(--card-color); border-radius: 6px; overflow: hidden; }
    .card button { background: none; padding: 0; width: 100%; text-align: left; color: inherit; }
    .card img { width: 100%; aspect-ratio: 2 / 3; object-fit: cover; display: block; }
    .card .meta { padding: 10px; }
    .more { text-align: center; padding-bottom: 30px; }
    .overlay {
      position: fixed;
      inset: 0;
      background: rgba(0, 0, 0, 0.8);
      display: flex;
      align-items: center;
      justify-content: center;
    }
    .modal {
      background: var(--card-color);
      border-radius: 8px;
      max-width: 900px;
      width: 95%;
      max-height: 90vh;
      overflow-y: auto;
      display: flex;
      gap: 25px;
      padding: 25px;
    }
    .modal img { width: 260px; border-radius: 6px; }
    .modal dl { display: grid; grid-template-columns: max-content 1fr; gap: 6px 15px; }
    .modal dt { color: var(--muted-color); }
    .genre {
      display: inline-block;
      border: 1px solid var(--primary-color);
      border-radius: 12px;
      padding: 2px 10px;
      margin: 0 5px 5px 0;
      font-size: 0.85rem;
    }
  </style>`

const splashPage = `<!DOCTYPE html>
<html lang="en">
<head>
  {{template "layout_head" .}}
</head>
<body>
  <div class="center">
    <h1 class="brand">MovieHUB</h1>
    <p class="muted">Search every movie, series and episode.</p>
    <a class="muted" href="/login">Continue</a>
  </div>
</body>
</html>`

const loginPage = `<!DOCTYPE html>
<html lang="en">
<head>
  {{template "layout_head" .}}
</head>
<body>
  <div class="center">
    <h1 class="brand">MovieHUB</h1>
    <form class="panel" method="post" action="/login">
      <label for="username">Username</label>
      <input type="text" id="username" name="username" value="{{.Username}}" autofocus>

      <label for="password">Password</label>
      <input type="password" id="password" name="password">

      {{if .Error}}<p class="error">{{.Error}}</p>{{end}}
      <p><button type="submit">Sign in</button></p>
    </form>
  </div>
</body>
</html>`

const searchPage = `<!DOCTYPE html>
<html lang="en">
<head>
  {{template "layout_head" .}}
</head>
<body>
  <header>
    <h2 class="brand">MovieHUB</h2>
    <form method="post" action="/logout">
      <span class="muted">{{.Username}}</span>
      <button class="link" type="submit">Sign out</button>
    </form>
  </header>

  <form class="search-bar" method="post" action="/search">
    <input type="text" name="q" value="{{.Search.Query}}" placeholder="Search for a movie" autofocus>
    <button type="submit">Search</button>
  </form>

  {{with .Search}}
    {{if .Loading}}<p class="muted" style="padding: 0 30px">Searching...</p>{{end}}
    {{if .ErrorMessage}}<p class="error" style="padding: 0 30px">{{.ErrorMessage}}</p>{{end}}
    {{if .Results}}
      <p class="muted" style="padding: 0 30px">Showing {{len .Results}} of {{.TotalResults}}</p>
      <div class="grid">
        {{range .Results}}
        <form class="card" method="post" action="/titles/{{.ID}}">
          <button type="submit">
            <img src="{{poster .PosterURL}}" alt="{{.Title}}" loading="lazy">
            <div class="meta">
              <div>{{.Title}}</div>
              <div class="muted">{{.Year}} &middot; {{.Kind}}</div>
            </div>
          </button>
        </form>
        {{end}}
      </div>
      {{if .HasMore}}
      <form class="more" method="post" action="/search/more">
        <button type="submit"{{if .LoadingMore}} disabled{{end}}>{{if .LoadingMore}}Loading...{{else}}Load More{{end}}</button>
      </form>
      {{end}}
    {{end}}
  {{end}}

  {{with .Detail}}
    {{if .Notice}}<p class="error" style="padding: 0 30px">{{.Notice}}</p>{{end}}
    {{with .Selected}}
    <div class="overlay">
      <div class="modal">
        <img src="{{poster .PosterURL}}" alt="{{.Title}}">
        <div>
          <form method="post" action="/titles/close" style="float: right">
            <button class="link" type="submit">Close</button>
          </form>
          <h2>{{.Title}} <span class="muted">({{.Year}})</span></h2>
          <div>{{range .Genres}}<span class="genre">{{.}}</span>{{end}}</div>
          <p>{{.Plot}}</p>
          <dl>
            <dt>Rated</dt><dd>{{.Rated}}</dd>
            <dt>Released</dt><dd>{{.Released}}</dd>
            <dt>Runtime</dt><dd>{{.Runtime}}</dd>
            <dt>Director</dt><dd>{{.Director}}</dd>
            <dt>Writer</dt><dd>{{.Writer}}</dd>
            <dt>Cast</dt><dd>{{.Actors}}</dd>
            <dt>Language</dt><dd>{{.Language}}</dd>
            <dt>Country</dt><dd>{{.Country}}</dd>
            <dt>Awards</dt><dd>{{.Awards}}</dd>
            <dt>Box office</dt><dd>{{.BoxOffice}}</dd>
            <dt>IMDb</dt><dd>{{.IMDbRating}} ({{.IMDbVotes}} votes)</dd>
            <dt>Metascore</dt><dd>{{.Metascore}}</dd>
            {{range .Ratings}}<dt>{{.Source}}</dt><dd>{{.Value}}</dd>{{end}}
          </dl>
          {{if .IMDbURL}}<p><a href="{{.IMDbURL}}" target="_blank" rel="noopener">View on IMDb</a></p>{{end}}
        </div>
      </div>
    </div>
    {{end}}
  {{end}}
</body>
</html>`
