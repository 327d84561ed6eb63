// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"

	"designforge/internal/palette"
)

var landingVariants = []Variant{
	{ID: "landing-hero-split", Produce: landingHeroSplit},
	{ID: "landing-hero-centered", Produce: landingHeroCentered},
	{ID: "landing-feature-panels", Produce: landingFeaturePanels},
	{ID: "landing-side-card", Produce: landingSideCard},
}

// landingHeroSplit is a two-column hero: copy on the left, product
// mockup on the right.
func landingHeroSplit(p palette.Palette) string {
	css := fmt.Sprintf(`
header{display:flex;justify-content:space-between;align-items:center;padding:24px 64px;border-bottom:1px solid #e5e7eb}
.logo{font-size:22px;font-weight:800;color:%[1]s}
nav{display:flex;gap:32px}
nav a{text-decoration:none;color:#374151;font-weight:500}
.hero{display:grid;grid-template-columns:1.1fr 0.9fr;gap:64px;align-items:center;padding:96px 64px;background:linear-gradient(160deg,#ffffff,%[1]s11)}
.hero h1{font-size:52px;line-height:1.1;color:#111827}
.hero h1 em{font-style:normal;color:%[1]s}
.hero p{margin-top:20px;font-size:18px;color:#4b5563;max-width:480px}
.cta-row{display:flex;gap:16px;margin-top:36px}
.btn-primary{background:%[1]s;color:#ffffff;padding:14px 32px;border-radius:10px;font-weight:600;text-decoration:none}
.btn-ghost{border:2px solid %[2]s;color:%[2]s;padding:12px 30px;border-radius:10px;font-weight:600;text-decoration:none}
.mockup{background:#111827;border-radius:18px;padding:28px;box-shadow:0 32px 64px %[1]s33}
.mockup .bar{height:10px;width:120px;border-radius:5px;background:%[3]s;margin-bottom:18px}
.mockup .line{height:8px;border-radius:4px;background:#374151;margin-bottom:12px}
.mockup .line.short{width:60%%}
footer{padding:32px 64px;color:#6b7280;border-top:1px solid #e5e7eb}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header>
  <div class="logo">Nimbus</div>
  <nav><a href="#">Product</a><a href="#">Pricing</a><a href="#">Docs</a><a href="#">Company</a></nav>
</header>
<main class="hero">
  <div>
    <h1>Ship your product <em>twice as fast</em></h1>
    <p>Nimbus gives small teams the release tooling of a platform org: preview environments, rollout gates, and instant rollbacks.</p>
    <div class="cta-row">
      <a class="btn-primary" href="#">Start free trial</a>
      <a class="btn-ghost" href="#">Watch demo</a>
    </div>
  </div>
  <div class="mockup">
    <div class="bar"></div>
    <div class="line"></div>
    <div class="line"></div>
    <div class="line short"></div>
  </div>
</main>
<footer>© Nimbus Labs — crafted for builders.</footer>`

	return document("Nimbus — Ship faster", css, body)
}

// landingHeroCentered stacks a centered hero above a three-up feature grid.
func landingHeroCentered(p palette.Palette) string {
	css := fmt.Sprintf(`
.wrap{display:flex;flex-direction:column;min-height:100vh}
header{padding:20px 48px;text-align:center;border-bottom:1px solid #f3f4f6}
.logo{font-weight:800;font-size:20px;color:%[1]s;letter-spacing:2px;text-transform:uppercase}
.hero{text-align:center;padding:110px 24px 90px;background:radial-gradient(circle at top,%[2]s1a,#ffffff)}
.hero h1{font-size:56px;color:#0f172a;max-width:760px;margin:0 auto}
.hero p{margin:24px auto 0;font-size:19px;color:#475569;max-width:560px}
.hero .cta{display:inline-block;margin-top:40px;background:%[1]s;color:#ffffff;padding:16px 44px;border-radius:999px;font-weight:700;text-decoration:none}
.features{display:grid;grid-template-columns:repeat(3,1fr);gap:28px;padding:72px 64px;background:#f8fafc}
.feature{background:#ffffff;border-radius:14px;padding:32px;border-top:4px solid %[3]s}
.feature h3{color:#0f172a;font-size:20px}
.feature p{margin-top:12px;color:#64748b;line-height:1.6}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="wrap">
<header><div class="logo">Lumen</div></header>
<main>
  <section class="hero">
    <h1>Analytics your whole team actually reads</h1>
    <p>One living dashboard instead of forty stale spreadsheets. Connect a source and share insight in minutes.</p>
    <a class="cta" href="#">Get started — it's free</a>
  </section>
  <section class="features">
    <div class="feature"><h3>Live sync</h3><p>Sources refresh continuously, so numbers in a meeting are the numbers in production.</p></div>
    <div class="feature"><h3>Plain-language queries</h3><p>Ask questions in English; Lumen compiles them to SQL you can inspect.</p></div>
    <div class="feature"><h3>Shareable boards</h3><p>Every chart has a stable URL with row-level permissions baked in.</p></div>
  </section>
</main>
</div>`

	return document("Lumen Analytics", css, body)
}

// landingFeaturePanels leads with a full-width banner and a four-panel
// capability strip.
func landingFeaturePanels(p palette.Palette) string {
	css := fmt.Sprintf(`
.banner{background:linear-gradient(120deg,%[1]s,%[2]s);color:#ffffff;padding:120px 72px}
.banner h1{font-size:48px;max-width:640px}
.banner p{margin-top:18px;font-size:18px;opacity:0.92;max-width:520px}
.banner a{display:inline-block;margin-top:34px;background:#ffffff;color:%[1]s;padding:14px 36px;border-radius:8px;font-weight:700;text-decoration:none}
.panels{display:grid;grid-template-columns:repeat(4,1fr);gap:1px;background:#e5e7eb}
.panel{background:#ffffff;padding:44px 32px}
.panel .num{font-size:14px;font-weight:700;color:%[3]s}
.panel h3{margin-top:10px;font-size:19px;color:#111827}
.panel p{margin-top:10px;color:#6b7280;line-height:1.6;font-size:15px}
.quote{padding:84px 72px;text-align:center}
.quote blockquote{font-size:26px;color:#1f2937;max-width:720px;margin:0 auto;font-style:italic}
.quote cite{display:block;margin-top:20px;color:%[1]s;font-weight:600;font-style:normal}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main>
<section class="banner">
  <h1>Payments infrastructure for ambitious marketplaces</h1>
  <p>Split payouts, hold funds in escrow, and stay compliant in 34 countries with a single integration.</p>
  <a href="#">Talk to sales</a>
</section>
<section class="panels">
  <div class="panel"><span class="num">01</span><h3>Split payouts</h3><p>Route a single charge to any number of sellers with per-party fees.</p></div>
  <div class="panel"><span class="num">02</span><h3>Escrow holds</h3><p>Hold funds until delivery confirmation with automatic release windows.</p></div>
  <div class="panel"><span class="num">03</span><h3>Tax forms</h3><p>1099 and DAC7 generation handled for every seller, every season.</p></div>
  <div class="panel"><span class="num">04</span><h3>Fraud signals</h3><p>Network-level risk scoring tuned for two-sided platforms.</p></div>
</section>
<section class="quote">
  <blockquote>We replaced four vendors and two spreadsheets the week we integrated.</blockquote>
  <cite>Amara Diallo — CTO, Fairlane Markets</cite>
</section>
</main>`

	return document("Ledgerline Payments", css, body)
}

// landingSideCard pins a signup card beside tall marketing copy.
func landingSideCard(p palette.Palette) string {
	css := fmt.Sprintf(`
.layout{display:grid;grid-template-columns:280px 1fr;min-height:100vh}
aside{background:#0f172a;color:#e2e8f0;padding:48px 32px;display:flex;flex-direction:column;gap:28px}
aside .logo{font-weight:800;font-size:20px;color:%[3]s}
aside .card{background:#1e293b;border-radius:12px;padding:24px;border:1px solid %[1]s55}
aside .card h3{font-size:16px}
aside .card p{margin-top:8px;font-size:13px;color:#94a3b8;line-height:1.5}
aside .card a{display:block;margin-top:16px;text-align:center;background:%[1]s;color:#ffffff;padding:10px 0;border-radius:8px;font-weight:600;text-decoration:none;font-size:14px}
.content{padding:80px 72px}
.content h1{font-size:44px;color:#0f172a;max-width:620px}
.content .lede{margin-top:20px;font-size:18px;color:#475569;max-width:560px}
.steps{margin-top:56px;display:flex;flex-direction:column;gap:24px}
.step{display:flex;gap:20px;align-items:flex-start}
.step .dot{width:36px;height:36px;border-radius:50%%;background:%[2]s;color:#ffffff;display:flex;align-items:center;justify-content:center;font-weight:700;flex-shrink:0}
.step h4{color:#0f172a}
.step p{margin-top:6px;color:#64748b;font-size:15px}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="layout">
<aside>
  <div class="logo">Relay</div>
  <div class="card">
    <h3>Start relaying today</h3>
    <p>No credit card. 10,000 webhook deliveries a month on the free tier, forever.</p>
    <a href="#">Create account</a>
  </div>
  <div class="card">
    <h3>On-prem?</h3>
    <p>Relay ships as a single static binary for air-gapped environments.</p>
    <a href="#">Read the guide</a>
  </div>
</aside>
<main class="content">
  <h1>Webhooks that never silently fail</h1>
  <p class="lede">Relay receives, persists, and retries every event with full replay history, so an outage downstream never loses an order again.</p>
  <div class="steps">
    <div class="step"><div class="dot">1</div><div><h4>Point your providers at Relay</h4><p>One ingest URL per environment, with signature verification for 40+ vendors.</p></div></div>
    <div class="step"><div class="dot">2</div><div><h4>Define delivery targets</h4><p>Fan out each event to any number of internal services with independent retry budgets.</p></div></div>
    <div class="step"><div class="dot">3</div><div><h4>Replay anything</h4><p>Every payload is queryable for 90 days. Re-deliver one event or a whole afternoon.</p></div></div>
  </div>
</main>
</div>`

	return document("Relay — Durable webhooks", css, body)
}
