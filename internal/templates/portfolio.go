// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"

	"designforge/internal/palette"
)

var portfolioVariants = []Variant{
	{ID: "folio-work-grid", Produce: folioWorkGrid},
	{ID: "folio-case-study", Produce: folioCaseStudy},
	{ID: "folio-minimal-list", Produce: folioMinimalList},
	{ID: "folio-split-showcase", Produce: folioSplitShowcase},
}

// folioWorkGrid is a three-column project wall under a short intro.
func folioWorkGrid(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#fafafa;color:#18181b}
header{padding:72px 64px 36px;max-width:980px}
header h1{font-size:40px}
header h1 span{color:%[1]s}
header p{margin-top:14px;font-size:17px;color:#52525b;max-width:560px;line-height:1.6}
.work{display:grid;grid-template-columns:repeat(3,minmax(0,1fr));gap:22px;padding:20px 64px 72px}
.piece{border-radius:14px;overflow:hidden;background:#ffffff;border:1px solid #e4e4e7}
.piece .cover{height:210px;background:linear-gradient(135deg,%[1]s55,%[2]s66)}
.piece.tall .cover{height:300px;background:linear-gradient(35deg,%[2]s55,%[3]s66)}
.piece figcaption{padding:16px 18px}
.piece h3{font-size:16px}
.piece span{display:block;margin-top:4px;font-size:13px;color:#71717a}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header>
  <h1>Mara Vance — <span>brand &amp; product design</span></h1>
  <p>Nine years helping early teams find a voice: identity systems, interfaces, and the occasional mural. Currently taking projects for autumn.</p>
</header>
<main class="work">
  <figure class="piece tall"><div class="cover"></div><figcaption><h3>Sable Coffee rebrand</h3><span>Identity · Packaging</span></figcaption></figure>
  <figure class="piece"><div class="cover"></div><figcaption><h3>Atlas onboarding flow</h3><span>Product · Mobile</span></figcaption></figure>
  <figure class="piece"><div class="cover"></div><figcaption><h3>Field Notes annual report</h3><span>Editorial</span></figcaption></figure>
  <figure class="piece"><div class="cover"></div><figcaption><h3>Quill writing app</h3><span>Product · Desktop</span></figcaption></figure>
  <figure class="piece tall"><div class="cover"></div><figcaption><h3>Harbor wayfinding</h3><span>Environmental</span></figcaption></figure>
  <figure class="piece"><div class="cover"></div><figcaption><h3>Solstice festival identity</h3><span>Identity · Motion</span></figcaption></figure>
</main>`

	return document("Mara Vance — Portfolio", css, body)
}

// folioCaseStudy is a sticky-chapter case study layout.
func folioCaseStudy(p palette.Palette) string {
	css := fmt.Sprintf(`
.study{display:grid;grid-template-columns:minmax(260px,320px) 1fr;min-height:100vh}
.chapters{background:#18181b;color:#d4d4d8;padding:56px 36px}
.chapters .client{font-size:13px;letter-spacing:2px;text-transform:uppercase;color:%[3]s;font-weight:700}
.chapters h1{font-size:28px;color:#fafafa;margin-top:10px}
.chapters ol{margin-top:40px;list-style:none}
.chapters li{padding:12px 0;border-bottom:1px solid #27272a;font-size:14px}
.chapters li.now{color:%[3]s;font-weight:700}
.body{padding:64px 72px;max-width:860px}
.body h2{font-size:26px;color:#18181b}
.body p{margin-top:16px;color:#3f3f46;line-height:1.8;font-size:16px}
.figure{margin:36px 0;height:320px;border-radius:14px;background:linear-gradient(120deg,%[1]s44,%[2]s55)}
.stat-row{display:flex;gap:40px;margin-top:40px}
.stat-row div b{display:block;font-size:32px;color:%[1]s}
.stat-row div span{font-size:13px;color:#71717a}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="study">
<aside class="chapters">
  <div class="client">Case study — Ferry &amp; Co</div>
  <h1>Rebuilding checkout for a century-old grocer</h1>
  <ol>
    <li class="now">01 — Context</li>
    <li>02 — Research</li>
    <li>03 — Design system</li>
    <li>04 — Outcomes</li>
  </ol>
</aside>
<main class="body">
  <h2>Context</h2>
  <p>Ferry &amp; Co's delivery business tripled in eighteen months, but its checkout predated the iPhone. Cart abandonment sat at 71% on mobile, and the support team spent most mornings untangling duplicate orders.</p>
  <div class="figure"></div>
  <p>We spent the first two weeks riding along with delivery drivers and sitting in the call center. The patterns were blunt: customers didn't trust the substitution flow, and the address form failed for a third of the city's older buildings.</p>
  <div class="stat-row">
    <div><b>-38%</b><span>cart abandonment</span></div>
    <div><b>+24%</b><span>repeat orders</span></div>
    <div><b>4 wks</b><span>to first ship</span></div>
  </div>
</main>
</div>`

	return document("Ferry & Co case study", css, body)
}

// folioMinimalList is typography-first: a plain index of selected work.
func folioMinimalList(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#ffffff;color:#111111;font-family:Georgia,'Times New Roman',serif}
.page{display:flex;flex-direction:column;min-height:100vh;padding:88px 96px}
.intro{max-width:640px}
.intro h1{font-size:34px;font-weight:400}
.intro p{margin-top:18px;font-size:18px;line-height:1.7;color:#444444}
.intro a{color:%[1]s}
.index{margin-top:72px;flex:1}
.index h2{font-size:13px;letter-spacing:3px;text-transform:uppercase;color:#999999;font-weight:400}
.row{display:flex;justify-content:space-between;align-items:baseline;padding:22px 0;border-bottom:1px solid #e5e5e5}
.row h3{font-size:22px;font-weight:400}
.row h3 a{color:#111111;text-decoration:none;border-bottom:2px solid %[2]s}
.row .year{font-size:14px;color:#999999}
footer{margin-top:64px;font-size:14px;color:#777777}
footer b{color:%[3]s;font-weight:600}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="page">
<section class="intro">
  <h1>Tomas Lindqvist, type &amp; interaction</h1>
  <p>I draw letterforms and build the interfaces they live in. Previously at <a href="#">Monotype</a> and <a href="#">Readymag</a>; now independent in Malmö.</p>
</section>
<main class="index">
  <h2>Selected work</h2>
  <div class="row"><h3><a href="#">Gavle Sans — a grotesque for wayfinding</a></h3><span class="year">2026</span></div>
  <div class="row"><h3><a href="#">Tidal reader for long essays</a></h3><span class="year">2025</span></div>
  <div class="row"><h3><a href="#">Öresund transit timetables</a></h3><span class="year">2025</span></div>
  <div class="row"><h3><a href="#">Variable specimen microsite</a></h3><span class="year">2024</span></div>
  <div class="row"><h3><a href="#">Bokförlaget Polaris covers</a></h3><span class="year">2023</span></div>
</main>
<footer>Set in <b>Gavle Sans</b> — write me at hello@lindqvist.work</footer>
</div>`

	return document("Tomas Lindqvist — Index", css, body)
}

// folioSplitShowcase locks a fixed intro pane beside a scrolling reel.
func folioSplitShowcase(p palette.Palette) string {
	css := fmt.Sprintf(`
.split{display:grid;grid-template-columns:45%% 55%%;min-height:100vh}
.pane{background:%[1]s;color:#ffffff;padding:80px 64px;display:flex;flex-direction:column;justify-content:space-between}
.pane h1{font-size:44px;line-height:1.15}
.pane .bio{margin-top:24px;font-size:16px;line-height:1.7;opacity:0.9;max-width:380px}
.pane .links{display:flex;gap:22px}
.pane .links a{color:#ffffff;font-weight:700;font-size:14px;border-bottom:2px solid %[3]s;text-decoration:none;padding-bottom:3px}
.reel{background:#0a0a0a;padding:40px;display:flex;flex-direction:column;gap:28px}
.shot{border-radius:12px;min-height:280px;background:linear-gradient(125deg,%[2]s66,%[1]s44);position:relative}
.shot figcaption{position:absolute;left:20px;bottom:18px;color:#ffffff;font-size:14px;font-weight:600}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="split">
<aside class="pane">
  <div>
    <h1>Films &amp; frames by Ada Osei</h1>
    <p class="bio">Director of photography for documentary and branded work. Comfortable on a glacier, in a kitchen, or forty meters under.</p>
  </div>
  <div class="links"><a href="#">Showreel</a><a href="#">About</a><a href="#">Contact</a></div>
</aside>
<main class="reel">
  <figure class="shot"><figcaption>Saltwater — feature doc, 2026</figcaption></figure>
  <figure class="shot"><figcaption>The Night Bakery — short, 2025</figcaption></figure>
  <figure class="shot"><figcaption>Aurora trail campaign — commercial</figcaption></figure>
</main>
</div>`

	return document("Ada Osei — Director of Photography", css, body)
}
