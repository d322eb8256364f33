package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/Zachkp/techfolio/internal/icon"
)

func TestDefaultCounts(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default() error = %v", err)
	}
	if got := len(c.Snippets()); got != 3 {
		t.Errorf("snippets = %d, want 3", got)
	}
	if got := len(c.Tips()); got != 4 {
		t.Errorf("tips = %d, want 4", got)
	}
	if got := len(c.Links()); got != 4 {
		t.Errorf("links = %d, want 4", got)
	}
	if got := len(c.Jokes()); got != 4 {
		t.Errorf("jokes = %d, want 4", got)
	}
}

func TestDefaultTitlesUnique(t *testing.T) {
	c := MustDefault()

	check := func(kind string, titles []string) {
		seen := map[string]bool{}
		for _, title := range titles {
			if seen[title] {
				t.Errorf("duplicate %s title %q", kind, title)
			}
			seen[title] = true
		}
	}

	var titles []string
	for _, s := range c.Snippets() {
		titles = append(titles, s.Title)
	}
	check("snippet", titles)

	titles = nil
	for _, tip := range c.Tips() {
		titles = append(titles, tip.Title)
	}
	check("tip", titles)

	titles = nil
	for _, l := range c.Links() {
		titles = append(titles, l.Title)
	}
	check("link", titles)
}

func TestDefaultSnippetContent(t *testing.T) {
	c := MustDefault()
	s, ok := c.Snippet(1)
	if !ok {
		t.Fatal("Snippet(1) not found")
	}
	if s.Title != "JS: Debounce функция" || s.Language != "JavaScript" {
		t.Fatalf("unexpected snippet %q (%s)", s.Title, s.Language)
	}
	if !strings.HasPrefix(s.Code, "// Оптимизация частых вызовов\nconst debounce") {
		t.Errorf("code does not start verbatim: %q", s.Code[:40])
	}
	if !strings.HasSuffix(s.Code, "}, 300);") {
		t.Errorf("code should end without trailing newline, got %q", s.Code[len(s.Code)-10:])
	}
	if strings.Join(s.Tags, ",") != "performance,optimization" {
		t.Errorf("tags = %v", s.Tags)
	}
}

func TestDefaultTipIcons(t *testing.T) {
	want := []icon.Icon{icon.AlertTriangle, icon.Lightbulb, icon.Palette, icon.Zap}
	for i, tip := range MustDefault().Tips() {
		if tip.Icon != want[i] {
			t.Errorf("tip %d icon = %v, want %v", i, tip.Icon, want[i])
		}
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := MustDefault()
	snips := c.Snippets()
	snips[0].Title = "changed"
	snips[0].Tags[0] = "changed"

	again := c.Snippets()
	if again[0].Title == "changed" || again[0].Tags[0] == "changed" {
		t.Fatal("mutating an accessor result changed the catalog")
	}
}

func TestSnippetLookup(t *testing.T) {
	c := MustDefault()
	if _, ok := c.Snippet(-1); ok {
		t.Error("Snippet(-1) should not exist")
	}
	if _, ok := c.Snippet(3); ok {
		t.Error("Snippet(3) should not exist")
	}
	i, s, ok := c.SnippetByTitle("css: центрирование")
	if !ok || i != 2 || s.Language != "CSS" {
		t.Errorf("SnippetByTitle = %d, %q, %v", i, s.Title, ok)
	}
	if _, _, ok := c.SnippetByTitle("Go: generics"); ok {
		t.Error("unknown title should not match")
	}
}

func TestParseRejectsBrokenCatalogs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(string) string
	}{
		{
			name: "unknown icon",
			mutate: func(s string) string {
				return strings.Replace(s, "icon: Zap", "icon: Rocket", 1)
			},
		},
		{
			name: "duplicate link title",
			mutate: func(s string) string {
				return strings.Replace(s, "title: CSS-Tricks", "title: JavaScript.info", 1)
			},
		},
		{
			name: "missing joke",
			mutate: func(s string) string {
				i := strings.Index(s, "  - emoji: \"🐛\"")
				return s[:i]
			},
		},
		{
			name: "bad url",
			mutate: func(s string) string {
				return strings.Replace(s, "https://css-tricks.com/", "css-tricks", 1)
			},
		},
		{
			name: "unknown field",
			mutate: func(s string) string {
				return strings.Replace(s, "category: Docs", "category: Docs\n    rating: 5", 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.mutate(string(embedded))))
			if !errors.Is(err, ErrInvalidCatalog) {
				t.Fatalf("Parse() error = %v, want ErrInvalidCatalog", err)
			}
		})
	}
}

// phpRouter is the router snippet byte for byte, including the
// whitespace-only separator lines inside the class body.
const phpRouter = `// Минималистичный роутер
class Router {
  private $routes = [];
  
  public function get($path, $callback) {
    $this->routes['GET'][$path] = $callback;
  }
  
  public function post($path, $callback) {
    $this->routes['POST'][$path] = $callback;
  }
  
  public function dispatch() {
    $method = $_SERVER['REQUEST_METHOD'];
    $path = parse_url($_SERVER['REQUEST_URI'], PHP_URL_PATH);
    
    if (isset($this->routes[$method][$path])) {
      call_user_func($this->routes[$method][$path]);
    } else {
      http_response_code(404);
      echo "404 Not Found";
    }
  }
}`

func TestSnippetCodeIsByteExact(t *testing.T) {
	c := MustDefault()

	snip, ok := c.Snippet(0)
	if !ok {
		t.Fatal("no first snippet")
	}
	if snip.Code != phpRouter {
		t.Errorf("PHP snippet differs from the original text:\ngot  %q\nwant %q", snip.Code, phpRouter)
	}

	sizes := []int{603, 361, 356}
	for i, want := range sizes {
		s, _ := c.Snippet(i)
		if got := len(s.Code); got != want {
			t.Errorf("snippet %d (%s) is %d bytes, want %d", i, s.Title, got, want)
		}
	}
}
