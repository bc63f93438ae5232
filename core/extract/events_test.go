package extract

import (
	"testing"
	"time"

	"localpulse-api/core/domain"
	"localpulse-api/core/feedxml"
)

func eventFeed(itemsXML string) []*feedxml.Item {
	doc, err := feedxml.Parse(`<rss version="2.0"><channel>` + itemsXML + `</channel></rss>`)
	if err != nil {
		panic(err)
	}
	return doc.Items()
}

func TestEvents_LabeledFields(t *testing.T) {
	items := eventFeed(`<item>
		<title>🎸 Friday Night Concert</title>
		<link>https://example.com/events/1</link>
		<description><![CDATA[
			<img src="https://example.com/poster.jpg"/>
			<p>Venue: The Ark</p>
			<p>Location: Downtown</p>
			<p>Address: 316 S Main St</p>
			<p>Category: Music</p>
			<p>Genre: Folk</p>
			<p>Price Range: $20-$35</p>
			<p>Date: 2024-06-14 20:00</p>
		]]></description>
	</item>`)

	records := Events(items)
	if len(records) != 1 {
		t.Fatalf("Events returned %d records, want 1", len(records))
	}

	ev := records[0].(domain.Event)
	if ev.Venue != "The Ark" {
		t.Errorf("Venue = %q", ev.Venue)
	}
	if ev.Genre != "Folk" {
		t.Errorf("Genre = %q", ev.Genre)
	}
	if ev.PriceRange != "$20-$35" {
		t.Errorf("PriceRange = %q", ev.PriceRange)
	}
	if ev.Emoji != "🎸" {
		t.Errorf("Emoji = %q", ev.Emoji)
	}
	if !ev.DateKnown {
		t.Error("DateKnown should be true for a parseable labeled date")
	}
	if ev.SortDate.Year() != 2024 || ev.SortDate.Month() != time.June {
		t.Errorf("SortDate = %v", ev.SortDate)
	}
}

func TestEvents_MissingImageSkipped(t *testing.T) {
	items := eventFeed(`<item>
		<title>No poster event</title>
		<description><![CDATA[<p>Venue: Somewhere</p>]]></description>
	</item>
	<item>
		<title>Has poster</title>
		<description><![CDATA[<img src="https://example.com/p.jpg"/>]]></description>
	</item>`)

	records := Events(items)

	if len(records) != 1 {
		t.Fatalf("Events returned %d records, want 1", len(records))
	}
	if records[0].(domain.Event).Title != "Has poster" {
		t.Error("the item without an image should be skipped, the next one kept")
	}
}

func TestEvents_DefaultEmojiWhenNoLeadingRun(t *testing.T) {
	items := eventFeed(`<item>
		<title>Plain title event</title>
		<description><![CDATA[<img src="https://example.com/p.jpg"/>]]></description>
	</item>`)

	ev := Events(items)[0].(domain.Event)
	if ev.Emoji != "🎟️" {
		t.Errorf("Emoji = %q, want default 🎟️", ev.Emoji)
	}
}

func TestSortEvents_TodayFirstThenAscending(t *testing.T) {
	today := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	records := []domain.Record{
		domain.Event{ID: "future", SortDate: today.AddDate(0, 0, 10), DateKnown: true},
		domain.Event{ID: "today", SortDate: today.Add(8 * time.Hour), DateKnown: true},
		domain.Event{ID: "soon", SortDate: today.AddDate(0, 0, 2), DateKnown: true},
	}

	SortEvents(records, today)

	if records[0].RecordID() != "today" {
		t.Errorf("first = %q, want today-event first regardless of input order", records[0].RecordID())
	}
	if records[1].RecordID() != "soon" || records[2].RecordID() != "future" {
		t.Errorf("order = %q, %q; want soon, future", records[1].RecordID(), records[2].RecordID())
	}
}

func TestSortEvents_UnparseableDatesSortLast(t *testing.T) {
	today := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	records := []domain.Record{
		domain.Event{ID: "undated-a"},
		domain.Event{ID: "dated", SortDate: today.AddDate(0, 0, 1), DateKnown: true},
		domain.Event{ID: "undated-b"},
	}

	SortEvents(records, today)

	if records[0].RecordID() != "dated" {
		t.Errorf("first = %q, want the dated event", records[0].RecordID())
	}
	if records[1].RecordID() != "undated-a" || records[2].RecordID() != "undated-b" {
		t.Error("undated events should sort last, keeping input order")
	}
}
