package extract

import (
	"testing"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

func atomEntries(entriesXML string) []*feedxml.Item {
	doc, err := feedxml.Parse(`<feed xmlns="http://www.w3.org/2005/Atom">` + entriesXML + `</feed>`)
	if err != nil {
		panic(err)
	}
	return doc.Items()
}

func TestRedditPosts_StructuredAuthorWins(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_1</id>
		<title>Structured author post</title>
		<link href="https://www.reddit.com/r/town/comments/1/"/>
		<author><name>/u/structured</name></author>
		<content type="html">&lt;p&gt;also mentions /u/decoy in passing&lt;/p&gt;</content>
	</entry>`)

	post := RedditPosts(items)[0].(domain.RedditPost)

	if post.Author != "structured" {
		t.Errorf("Author = %q, want structured", post.Author)
	}
}

func TestRedditPosts_RawMarkupAuthorFallback(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_2</id>
		<title>No structured author</title>
		<link href="https://www.reddit.com/r/town/comments/2/"/>
		<content type="html">&lt;p&gt;photo dump - (/u/someuser)&lt;/p&gt;</content>
	</entry>`)

	post := RedditPosts(items)[0].(domain.RedditPost)

	if post.Author != "someuser" {
		t.Errorf("Author = %q, want someuser", post.Author)
	}
}

func TestRedditPosts_LoosePatternLast(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_3</id>
		<title>Loose mention only</title>
		<link href="https://www.reddit.com/r/town/comments/3/"/>
		<content type="html">&lt;p&gt;thanks to /u/helpful for the tip&lt;/p&gt;</content>
	</entry>`)

	post := RedditPosts(items)[0].(domain.RedditPost)

	if post.Author != "helpful" {
		t.Errorf("Author = %q, want helpful", post.Author)
	}
}

func TestRedditPosts_TitleFallbackFromBody(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_4</id>
		<title></title>
		<link href="https://www.reddit.com/r/town/comments/4/"/>
		<content type="html">&lt;p&gt;Short body text here&lt;/p&gt;</content>
	</entry>`)

	records := RedditPosts(items)
	if len(records) != 1 {
		t.Fatalf("RedditPosts returned %d records, want 1", len(records))
	}
	if records[0].(domain.RedditPost).Title != "Short body text here" {
		t.Errorf("Title fallback = %q", records[0].(domain.RedditPost).Title)
	}
}

func TestRedditPosts_NoTitleOrBodySkipped(t *testing.T) {
	items := atomEntries(`<entry><id>t3_5</id><title></title></entry>
		<entry><id>t3_6</id><title>kept</title>
		<link href="https://www.reddit.com/r/town/comments/6/"/></entry>`)

	records := RedditPosts(items)

	if len(records) != 1 {
		t.Fatalf("RedditPosts returned %d records, want 1", len(records))
	}
	if records[0].(domain.RedditPost).Title != "kept" {
		t.Error("extraction should continue past the skipped item")
	}
}

func TestRedditPosts_ScoreAndComments(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_7</id>
		<title>Scored post</title>
		<link href="https://www.reddit.com/r/town/comments/7/"/>
		<content type="html">&lt;p&gt;142 points and 37 comments so far&lt;/p&gt;</content>
	</entry>`)

	post := RedditPosts(items)[0].(domain.RedditPost)

	if post.Score != 142 {
		t.Errorf("Score = %d, want 142", post.Score)
	}
	if post.Comments != 37 {
		t.Errorf("Comments = %d, want 37", post.Comments)
	}
}

func TestRedditPosts_ZeroDefaultsForNumericFields(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_8</id>
		<title>Bare post</title>
		<link href="https://www.reddit.com/r/town/comments/8/"/>
	</entry>`)

	post := RedditPosts(items)[0].(domain.RedditPost)

	if post.Score != 0 || post.Comments != 0 {
		t.Errorf("Score/Comments = %d/%d, want 0/0", post.Score, post.Comments)
	}
}

func TestClassifyPost_ImageHostURL(t *testing.T) {
	if got := classifyPost("https://i.redd.it/abc.jpg", nil); got != domain.PostTypeImage {
		t.Errorf("classifyPost = %q, want image", got)
	}
}

func TestClassifyPost_PollLink(t *testing.T) {
	if got := classifyPost("https://www.reddit.com/poll/xyz", nil); got != domain.PostTypePoll {
		t.Errorf("classifyPost = %q, want poll", got)
	}
}

func TestClassifyPost_InternalLinkIsText(t *testing.T) {
	if got := classifyPost("https://www.reddit.com/r/town/comments/9/", nil); got != domain.PostTypeText {
		t.Errorf("classifyPost = %q, want text", got)
	}
}

func TestClassifyPost_ExternalLinkSetsDomain(t *testing.T) {
	items := atomEntries(`<entry>
		<id>t3_9</id>
		<title>External article</title>
		<link href="https://www.annarbornews.example/story"/>
	</entry>`)

	post := RedditPosts(items)[0].(domain.RedditPost)

	if post.PostType != domain.PostTypeLink {
		t.Errorf("PostType = %q, want link", post.PostType)
	}
	if post.Domain != "www.annarbornews.example" {
		t.Errorf("Domain = %q", post.Domain)
	}
}

func TestNormalizeUsername_StripsSlashes(t *testing.T) {
	cases := map[string]string{
		"/u/name/":  "name",
		"u/name":    "name",
		"  name  ":  "name",
		"/name":     "name",
	}
	for in, want := range cases {
		if got := normalizeUsername(in); got != want {
			t.Errorf("normalizeUsername(%q) = %q, want %q", in, got, want)
		}
	}
}
