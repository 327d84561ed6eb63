// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"

	"designforge/internal/palette"
)

var dashboardVariants = []Variant{
	{ID: "dash-analytics", Produce: dashAnalytics},
	{ID: "dash-kanban", Produce: dashKanban},
	{ID: "dash-crm", Produce: dashCRM},
	{ID: "dash-monitoring", Produce: dashMonitoring},
}

// dashAnalytics is a classic sidebar shell with a four-up stat row and a
// chart placeholder.
func dashAnalytics(p palette.Palette) string {
	css := fmt.Sprintf(`
.app{display:grid;grid-template-columns:240px 1fr;min-height:100vh;background:#f1f5f9}
.sidebar{background:#0f172a;color:#cbd5e1;padding:28px 20px}
.sidebar .brand{color:#ffffff;font-weight:800;font-size:18px;margin-bottom:36px}
.sidebar a{display:block;padding:10px 14px;border-radius:8px;color:#94a3b8;text-decoration:none;margin-bottom:4px;font-size:14px}
.sidebar a.active{background:%[1]s;color:#ffffff}
.main{padding:32px 40px}
.topbar{display:flex;justify-content:space-between;align-items:center;margin-bottom:28px}
.topbar h1{font-size:24px;color:#0f172a}
.topbar .avatar{width:40px;height:40px;border-radius:50%%;background:%[2]s}
.stats{display:grid;grid-template-columns:repeat(4,minmax(0,1fr));gap:20px}
.stat{background:#ffffff;border-radius:12px;padding:22px;box-shadow:0 1px 3px rgba(15,23,42,0.08)}
.stat .label{font-size:13px;color:#64748b}
.stat .value{font-size:28px;font-weight:700;color:#0f172a;margin-top:6px}
.stat .delta{font-size:12px;font-weight:600;color:%[3]s;margin-top:4px}
.chart{margin-top:24px;background:#ffffff;border-radius:12px;padding:26px;box-shadow:0 1px 3px rgba(15,23,42,0.08)}
.chart h2{font-size:16px;color:#0f172a;margin-bottom:18px}
.bars{display:flex;align-items:flex-end;gap:14px;height:180px}
.bars span{flex:1;border-radius:6px 6px 0 0;background:linear-gradient(180deg,%[1]s,%[2]s)}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="app">
<aside class="sidebar">
  <div class="brand">Pulseboard</div>
  <a class="active" href="#">Overview</a>
  <a href="#">Audience</a>
  <a href="#">Funnels</a>
  <a href="#">Retention</a>
  <a href="#">Settings</a>
</aside>
<main class="main">
  <div class="topbar"><h1>Overview</h1><div class="avatar"></div></div>
  <section class="stats">
    <div class="stat"><div class="label">Visitors</div><div class="value">48,210</div><div class="delta">+12.4%</div></div>
    <div class="stat"><div class="label">Signups</div><div class="value">1,904</div><div class="delta">+8.1%</div></div>
    <div class="stat"><div class="label">Conversion</div><div class="value">3.9%</div><div class="delta">+0.6pt</div></div>
    <div class="stat"><div class="label">MRR</div><div class="value">$92.4k</div><div class="delta">+4.2%</div></div>
  </section>
  <section class="chart">
    <h2>Weekly active users</h2>
    <div class="bars"><span style="height:40%"></span><span style="height:55%"></span><span style="height:48%"></span><span style="height:70%"></span><span style="height:64%"></span><span style="height:82%"></span><span style="height:91%"></span></div>
  </section>
</main>
</div>`

	return document("Pulseboard — Overview", css, body)
}

// dashKanban lays three fixed-width task columns across a muted canvas.
func dashKanban(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#f8fafc}
header{display:flex;align-items:center;gap:18px;padding:18px 32px;background:#ffffff;border-bottom:1px solid #e2e8f0}
header h1{font-size:18px;color:#0f172a}
header .badge{background:%[3]s22;color:%[3]s;padding:4px 12px;border-radius:999px;font-size:12px;font-weight:700}
.board{display:grid;grid-template-columns:repeat(3,320px);gap:24px;padding:32px;justify-content:center}
.col{background:#f1f5f9;border-radius:14px;padding:16px}
.col h2{font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#64748b;padding:4px 8px 12px}
.card{background:#ffffff;border-radius:10px;padding:16px;margin-bottom:12px;border-left:4px solid %[1]s;box-shadow:0 1px 2px rgba(15,23,42,0.06)}
.card.alt{border-left-color:%[2]s}
.card h3{font-size:14px;color:#0f172a}
.card p{margin-top:6px;font-size:12px;color:#64748b}
.card .meta{display:flex;justify-content:space-between;margin-top:12px;font-size:11px;color:#94a3b8}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header><h1>Launch board</h1><span class="badge">Sprint 24</span></header>
<main class="board">
  <section class="col">
    <h2>To do</h2>
    <article class="card"><h3>Rate limit the export API</h3><p>Burst traffic from the new integration is starving the queue.</p><div class="meta"><span>API</span><span>3 pts</span></div></article>
    <article class="card alt"><h3>Empty-state illustrations</h3><p>Dashboard, funnels, and retention pages need first-run art.</p><div class="meta"><span>Design</span><span>2 pts</span></div></article>
  </section>
  <section class="col">
    <h2>In progress</h2>
    <article class="card"><h3>Billing proration rewrite</h3><p>Mid-cycle seat changes round in the customer's favor.</p><div class="meta"><span>Billing</span><span>5 pts</span></div></article>
    <article class="card alt"><h3>Keyboard palette</h3><p>Cmd-K everywhere; fuzzy match over actions and docs.</p><div class="meta"><span>Web</span><span>3 pts</span></div></article>
  </section>
  <section class="col">
    <h2>Done</h2>
    <article class="card"><h3>SSO domain capture</h3><p>New signups with a claimed domain route to the right org.</p><div class="meta"><span>Auth</span><span>5 pts</span></div></article>
  </section>
</main>`

	return document("Launch board", css, body)
}

// dashCRM pairs a narrow nav rail with a deal table and activity column.
func dashCRM(p palette.Palette) string {
	css := fmt.Sprintf(`
.shell{display:grid;grid-template-columns:220px 1fr;min-height:100vh}
nav{background:#ffffff;border-right:1px solid #e5e7eb;padding:24px 16px}
nav .brand{font-weight:800;color:%[1]s;margin-bottom:28px;padding:0 10px}
nav a{display:block;padding:9px 12px;border-radius:6px;color:#4b5563;text-decoration:none;font-size:14px;margin-bottom:2px}
nav a.on{background:%[1]s14;color:%[1]s;font-weight:600}
.work{background:#f9fafb;padding:28px 32px;display:grid;grid-template-columns:2fr 1fr;gap:24px;align-content:start}
.deals{background:#ffffff;border-radius:12px;border:1px solid #e5e7eb}
.deals h2{font-size:15px;color:#111827;padding:18px 20px;border-bottom:1px solid #f3f4f6}
table{width:100%%;border-collapse:collapse;font-size:14px}
th{text-align:left;padding:10px 20px;color:#6b7280;font-size:12px;text-transform:uppercase;letter-spacing:0.5px}
td{padding:12px 20px;border-top:1px solid #f3f4f6;color:#111827}
.stage{padding:3px 10px;border-radius:999px;font-size:12px;font-weight:600}
.stage.won{background:%[3]s22;color:%[3]s}
.stage.talks{background:%[2]s22;color:%[2]s}
.activity{background:#ffffff;border-radius:12px;border:1px solid #e5e7eb;padding:20px}
.activity h2{font-size:15px;color:#111827;margin-bottom:16px}
.event{display:flex;gap:12px;margin-bottom:16px}
.event .tick{width:10px;height:10px;border-radius:50%%;background:%[1]s;margin-top:5px;flex-shrink:0}
.event p{font-size:13px;color:#4b5563}
.event time{font-size:11px;color:#9ca3af}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="shell">
<nav>
  <div class="brand">Harbor CRM</div>
  <a href="#">Inbox</a>
  <a class="on" href="#">Deals</a>
  <a href="#">Contacts</a>
  <a href="#">Reports</a>
</nav>
<main class="work">
  <section class="deals">
    <h2>Open deals</h2>
    <table>
      <thead><tr><th>Company</th><th>Value</th><th>Stage</th><th>Owner</th></tr></thead>
      <tbody>
        <tr><td>Beacon Foods</td><td>$84,000</td><td><span class="stage talks">Negotiation</span></td><td>Priya</td></tr>
        <tr><td>Northwind Freight</td><td>$46,500</td><td><span class="stage talks">Discovery</span></td><td>Jonas</td></tr>
        <tr><td>Cobalt Health</td><td>$120,000</td><td><span class="stage won">Closed won</span></td><td>Priya</td></tr>
        <tr><td>Apex Renewables</td><td>$63,200</td><td><span class="stage talks">Proposal</span></td><td>Mei</td></tr>
      </tbody>
    </table>
  </section>
  <section class="activity">
    <h2>Activity</h2>
    <div class="event"><span class="tick"></span><div><p>Priya logged a call with Beacon Foods</p><time>25 min ago</time></div></div>
    <div class="event"><span class="tick"></span><div><p>Proposal sent to Apex Renewables</p><time>2 h ago</time></div></div>
    <div class="event"><span class="tick"></span><div><p>Cobalt Health countersigned</p><time>Yesterday</time></div></div>
  </section>
</main>
</div>`

	return document("Harbor CRM — Deals", css, body)
}

// dashMonitoring is a dark ops view: service health tiles over an
// incident feed.
func dashMonitoring(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#0b1120;color:#e2e8f0}
header{display:flex;justify-content:space-between;align-items:center;padding:20px 36px;border-bottom:1px solid #1e293b}
header h1{font-size:18px}
header .status{font-size:13px;color:%[3]s;font-weight:700}
.tiles{display:grid;grid-template-columns:1fr 1fr 1fr;gap:18px;padding:28px 36px}
.tile{background:#111c33;border:1px solid #1e293b;border-radius:12px;padding:20px}
.tile h2{font-size:14px;color:#94a3b8}
.tile .big{font-size:30px;font-weight:700;margin-top:8px;color:#f8fafc}
.tile .spark{margin-top:14px;height:6px;border-radius:3px;background:linear-gradient(90deg,%[1]s,%[2]s)}
.feed{padding:8px 36px 36px}
.feed h2{font-size:15px;color:#94a3b8;margin-bottom:14px}
.incident{display:flex;gap:14px;background:#111c33;border:1px solid #1e293b;border-radius:10px;padding:16px;margin-bottom:10px}
.incident .sev{width:8px;border-radius:4px;background:%[1]s;flex-shrink:0}
.incident h3{font-size:14px;color:#f1f5f9}
.incident p{margin-top:4px;font-size:13px;color:#64748b}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header><h1>Fleet status</h1><span class="status">● All systems nominal</span></header>
<main>
<section class="tiles">
  <div class="tile"><h2>API p99 latency</h2><div class="big">184 ms</div><div class="spark"></div></div>
  <div class="tile"><h2>Error rate</h2><div class="big">0.03%</div><div class="spark"></div></div>
  <div class="tile"><h2>Queue depth</h2><div class="big">1,208</div><div class="spark"></div></div>
</section>
<section class="feed">
  <h2>Recent incidents</h2>
  <div class="incident"><span class="sev"></span><div><h3>Elevated 5xx on ingest-eu</h3><p>Resolved in 14 minutes — bad canary rolled back automatically.</p></div></div>
  <div class="incident"><span class="sev"></span><div><h3>Scheduled maintenance: primary failover drill</h3><p>Completed with 0 dropped requests.</p></div></div>
</section>
</main>`

	return document("Fleet status", css, body)
}
