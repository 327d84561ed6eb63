// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"

	"designforge/internal/palette"
)

var blogVariants = []Variant{
	{ID: "blog-editorial", Produce: blogEditorial},
	{ID: "blog-magazine", Produce: blogMagazine},
	{ID: "blog-card-list", Produce: blogCardList},
	{ID: "blog-newsletter", Produce: blogNewsletter},
}

// blogEditorial centers a single long-form article in a measured column.
func blogEditorial(p palette.Palette) string {
	css := fmt.Sprintf(`
body{color:#1f2937}
.page{display:grid;grid-template-columns:1fr min(680px,100%%) 1fr}
.page>*{grid-column:2}
header{padding:28px 0;border-bottom:1px solid #e5e7eb;display:flex;justify-content:space-between;align-items:baseline}
header .mast{font-weight:800;font-size:18px;color:%[1]s}
header nav a{margin-left:20px;font-size:14px;color:#6b7280;text-decoration:none}
article{padding:56px 0 80px}
.kicker{font-size:13px;font-weight:700;letter-spacing:2px;text-transform:uppercase;color:%[3]s}
article h1{font-size:42px;line-height:1.15;margin-top:12px}
.byline{margin-top:18px;font-size:14px;color:#6b7280}
.byline b{color:#111827}
article p{margin-top:26px;font-size:18px;line-height:1.8;color:#374151}
article p:first-of-type::first-letter{font-size:54px;float:left;line-height:1;padding-right:10px;color:%[1]s;font-weight:700}
blockquote{margin:36px 0;padding-left:24px;border-left:4px solid %[2]s;font-size:22px;font-style:italic;color:#111827}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="page">
<header>
  <div class="mast">The Slow Web</div>
  <nav><a href="#">Essays</a><a href="#">Archive</a><a href="#">About</a></nav>
</header>
<main>
<article>
  <div class="kicker">Essays · Infrastructure</div>
  <h1>The quiet virtue of boring databases</h1>
  <div class="byline">By <b>June Okafor</b> · 14 min read · March 2026</div>
  <p>Every few years a new storage engine promises to end the tyranny of the relational model, and every few years a generation of startups learns the same expensive lesson: your data outlives your architecture diagrams.</p>
  <p>The teams that sleep well run databases their grandparents could administer. Not because novelty is bad, but because storage is where optimism goes to compound into debt.</p>
  <blockquote>Your data outlives your architecture diagrams — plan for the custodian, not the demo.</blockquote>
  <p>None of this argues against progress. It argues for placing bets where losing is survivable: caches, queues, search indexes. The system of record earns the boring choice precisely because it is the one you cannot walk back.</p>
</article>
</main>
</div>`

	return document("The quiet virtue of boring databases", css, body)
}

// blogMagazine pairs a lead story with a headline rail.
func blogMagazine(p palette.Palette) string {
	css := fmt.Sprintf(`
header{padding:26px 56px;border-bottom:3px solid #111827;display:flex;justify-content:space-between;align-items:center}
.mast{font-size:26px;font-weight:900;letter-spacing:-1px;color:#111827}
.date{font-size:13px;color:#6b7280}
.front{display:grid;grid-template-columns:2.2fr 1fr;gap:48px;padding:44px 56px}
.lead .photo{height:340px;border-radius:6px;background:linear-gradient(140deg,%[1]s,%[2]s)}
.lead .section{margin-top:20px;font-size:12px;font-weight:800;letter-spacing:2px;color:%[1]s;text-transform:uppercase}
.lead h1{font-size:38px;line-height:1.15;margin-top:8px;color:#111827}
.lead p{margin-top:14px;font-size:17px;color:#4b5563;line-height:1.65}
.rail h2{font-size:13px;font-weight:800;letter-spacing:2px;text-transform:uppercase;color:#9ca3af;border-bottom:1px solid #e5e7eb;padding-bottom:10px}
.head{padding:18px 0;border-bottom:1px solid #f3f4f6}
.head .tag{font-size:11px;font-weight:800;color:%[3]s;text-transform:uppercase;letter-spacing:1px}
.head h3{font-size:17px;color:#111827;margin-top:4px;line-height:1.35}
.head span{font-size:12px;color:#9ca3af}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header><div class="mast">Meridian Review</div><div class="date">Tuesday, 31 March 2026</div></header>
<main class="front">
<section class="lead">
  <div class="photo"></div>
  <div class="section">Field report</div>
  <h1>The last lighthouse keepers of the Baltic</h1>
  <p>Automation came for the beacons decades ago, but on a handful of islands the lamps are still trimmed by hand. We spent a winter with the families who refuse to let the lights go dark.</p>
</section>
<aside class="rail">
  <h2>Latest</h2>
  <div class="head"><div class="tag">Science</div><h3>A cheaper path to green steel runs through Sweden</h3><span>8 min</span></div>
  <div class="head"><div class="tag">Cities</div><h3>What Tokyo knows about small apartments</h3><span>12 min</span></div>
  <div class="head"><div class="tag">Profile</div><h3>The cartographer mapping invisible borders</h3><span>15 min</span></div>
  <div class="head"><div class="tag">Letters</div><h3>On the ethics of archiving the web</h3><span>5 min</span></div>
</aside>
</main>`

	return document("Meridian Review", css, body)
}

// blogCardList is a two-up archive of post summary cards.
func blogCardList(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#f9fafb}
.hero{background:#111827;color:#f9fafb;padding:64px 56px}
.hero h1{font-size:34px}
.hero p{margin-top:12px;color:#9ca3af;font-size:16px;max-width:520px}
.hero .tags{display:flex;gap:10px;margin-top:24px}
.hero .tags span{border:1px solid #374151;border-radius:999px;padding:6px 16px;font-size:13px;color:#d1d5db}
.hero .tags span.hot{background:%[1]s;border-color:%[1]s;color:#ffffff}
.posts{display:grid;grid-template-columns:repeat(2,1fr);gap:26px;padding:44px 56px}
.post{background:#ffffff;border-radius:14px;border:1px solid #e5e7eb;padding:26px}
.post .meta{display:flex;gap:12px;font-size:12px;color:#9ca3af}
.post .meta b{color:%[2]s}
.post h2{margin-top:10px;font-size:21px;color:#111827;line-height:1.3}
.post p{margin-top:10px;color:#6b7280;font-size:15px;line-height:1.6}
.post a{display:inline-block;margin-top:16px;color:%[1]s;font-weight:700;font-size:14px;text-decoration:none}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header class="hero">
  <h1>Notes from the workshop</h1>
  <p>Engineering write-ups from the team building Foundry — mistakes included, benchmarks reproducible.</p>
  <div class="tags"><span class="hot">All</span><span>Performance</span><span>Postgres</span><span>Go</span><span>Incidents</span></div>
</header>
<main class="posts">
  <article class="post"><div class="meta"><b>Performance</b><span>18 Mar 2026</span></div><h2>We were wrong about connection pooling</h2><p>Three benchmarks that contradicted our own advice, and the config we actually run now.</p><a href="#">Read post →</a></article>
  <article class="post"><div class="meta"><b>Incidents</b><span>11 Mar 2026</span></div><h2>Postmortem: the 41-minute write outage</h2><p>A full timeline, the alert that never fired, and what we changed about failover drills.</p><a href="#">Read post →</a></article>
  <article class="post"><div class="meta"><b>Go</b><span>27 Feb 2026</span></div><h2>Profiling a leaky goroutine in production</h2><p>pprof, a flame graph that lied, and the three-line fix under it all.</p><a href="#">Read post →</a></article>
  <article class="post"><div class="meta"><b>Postgres</b><span>12 Feb 2026</span></div><h2>Partial indexes paid our cloud bill</h2><p>How one WHERE clause cut a table scan from 9 s to 40 ms.</p><a href="#">Read post →</a></article>
</main>`

	return document("Notes from the workshop", css, body)
}

// blogNewsletter puts the article beside a persistent subscribe rail.
func blogNewsletter(p palette.Palette) string {
	css := fmt.Sprintf(`
.wrap{display:grid;grid-template-columns:1fr 320px;gap:48px;padding:56px 64px;align-items:start}
article .issue{font-size:13px;font-weight:700;color:%[3]s;letter-spacing:1px}
article h1{font-size:36px;color:#0f172a;margin-top:8px}
article .standfirst{margin-top:14px;font-size:18px;color:#475569;line-height:1.6}
article h2{margin-top:36px;font-size:22px;color:#0f172a}
article p{margin-top:14px;font-size:16px;line-height:1.75;color:#334155}
article .divider{margin:32px 0;height:3px;width:80px;background:%[2]s;border-radius:2px}
.rail{position:sticky;top:24px;display:flex;flex-direction:column;gap:20px}
.sub{background:%[1]s;color:#ffffff;border-radius:14px;padding:26px}
.sub h3{font-size:18px}
.sub p{margin-top:8px;font-size:14px;opacity:0.92;line-height:1.5}
.sub input{margin-top:16px;width:100%%;border:none;border-radius:8px;padding:12px;font-size:14px}
.sub button{margin-top:10px;width:100%%;border:none;border-radius:8px;padding:12px;background:#0f172a;color:#ffffff;font-weight:700;font-size:14px}
.prev{border:1px solid #e2e8f0;border-radius:14px;padding:20px}
.prev h4{font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#94a3b8}
.prev a{display:block;margin-top:12px;font-size:14px;color:#0f172a;text-decoration:none;line-height:1.4}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main class="wrap">
<article>
  <div class="issue">Issue 112 — Supply Lines</div>
  <h1>Why every port is suddenly building cold storage</h1>
  <p class="standfirst">Vaccine logistics rewired the world's docks. Five years on, the freezers never left — and they're changing what ships.</p>
  <div class="divider"></div>
  <h2>The refrigerated pivot</h2>
  <p>Walk the quays of Rotterdam or Savannah and the new construction is unmistakable: windowless white boxes, ammonia stacks, guarded loading bays at minus twenty-five. Cold capacity at the world's twenty busiest ports has doubled since 2021.</p>
  <p>The economics are blunt. A refrigerated container earns roughly triple the freight of a dry one, and the produce trade no longer tolerates the week of ambient limbo that used to be standard.</p>
</article>
<aside class="rail">
  <div class="sub">
    <h3>Supply Lines, weekly</h3>
    <p>One story about how things move, every Thursday. Read by 48,000 logistics people.</p>
    <input type="email" placeholder="you@company.com">
    <button>Subscribe free</button>
  </div>
  <div class="prev">
    <h4>Previous issues</h4>
    <a href="#">111 — The great pallet shortage, revisited</a>
    <a href="#">110 — Rail freight's quiet electric decade</a>
    <a href="#">109 — Inside the chocolate futures floor</a>
  </div>
</aside>
</main>`

	return document("Supply Lines — Issue 112", css, body)
}
