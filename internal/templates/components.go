// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"

	"designforge/internal/palette"
)

var componentsVariants = []Variant{
	{ID: "comp-buttons-forms", Produce: compButtonsForms},
	{ID: "comp-card-kit", Produce: compCardKit},
	{ID: "comp-navigation", Produce: compNavigation},
	{ID: "comp-pricing", Produce: compPricing},
}

// compButtonsForms is a control-library sheet: button states and a form kit.
func compButtonsForms(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#f4f4f5;padding:48px 56px}
h1{font-size:26px;color:#18181b}
.sheet{display:grid;grid-template-columns:repeat(auto-fill,minmax(220px,1fr));gap:20px;margin-top:28px}
.swatch{background:#ffffff;border-radius:12px;padding:22px;border:1px solid #e4e4e7}
.swatch h2{font-size:12px;text-transform:uppercase;letter-spacing:1px;color:#a1a1aa;margin-bottom:16px}
.btn{display:inline-block;padding:11px 22px;border-radius:8px;font-size:14px;font-weight:600;border:none}
.btn.solid{background:%[1]s;color:#ffffff}
.btn.soft{background:%[1]s1f;color:%[1]s}
.btn.outline{background:transparent;border:2px solid %[2]s;color:%[2]s}
.btn.danger{background:#dc2626;color:#ffffff}
.btn.disabled{background:#e4e4e7;color:#a1a1aa}
label{display:block;font-size:13px;font-weight:600;color:#3f3f46;margin-bottom:6px}
input,select{width:100%%;padding:10px 12px;border:1px solid #d4d4d8;border-radius:8px;font-size:14px;background:#ffffff}
input:focus{outline:2px solid %[1]s}
.hint{margin-top:6px;font-size:12px;color:#a1a1aa}
.hint.error{color:#dc2626}
.toggle{width:44px;height:24px;border-radius:999px;background:%[3]s;position:relative}
.toggle::after{content:'';position:absolute;right:3px;top:3px;width:18px;height:18px;border-radius:50%%;background:#ffffff}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main>
<h1>Meadow UI — controls</h1>
<section class="sheet">
  <div class="swatch"><h2>Buttons</h2><button class="btn solid">Save changes</button></div>
  <div class="swatch"><h2>Soft</h2><button class="btn soft">Duplicate</button></div>
  <div class="swatch"><h2>Outline</h2><button class="btn outline">Export CSV</button></div>
  <div class="swatch"><h2>Destructive</h2><button class="btn danger">Delete project</button></div>
  <div class="swatch"><h2>Disabled</h2><button class="btn disabled">Processing…</button></div>
  <div class="swatch"><h2>Text field</h2><label>Workspace name</label><input value="acme-staging"><div class="hint">Lowercase letters and dashes.</div></div>
  <div class="swatch"><h2>Error state</h2><label>Email</label><input value="june@"><div class="hint error">Enter a complete address.</div></div>
  <div class="swatch"><h2>Select</h2><label>Region</label><select><option>eu-central</option></select></div>
  <div class="swatch"><h2>Toggle</h2><label>Weekly digest</label><div class="toggle"></div></div>
</section>
</main>`

	return document("Meadow UI — Controls", css, body)
}

// compCardKit shows the card family: metric, profile, and notification.
func compCardKit(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#0f172a;padding:52px 60px}
h1{color:#f8fafc;font-size:26px}
p.sub{color:#64748b;margin-top:8px;font-size:15px}
.kit{display:grid;grid-template-columns:repeat(auto-fit,minmax(260px,1fr));gap:24px;margin-top:32px}
.card{background:#1e293b;border-radius:14px;padding:24px;border:1px solid #334155}
.card h2{font-size:13px;text-transform:uppercase;letter-spacing:1px;color:#94a3b8}
.metric .value{font-size:34px;font-weight:800;color:#f8fafc;margin-top:10px}
.metric .trend{display:inline-block;margin-top:8px;background:%[3]s26;color:%[3]s;border-radius:6px;padding:3px 10px;font-size:12px;font-weight:700}
.profile{display:flex;gap:16px;align-items:center}
.profile .pic{width:56px;height:56px;border-radius:50%%;background:linear-gradient(140deg,%[1]s,%[2]s);flex-shrink:0}
.profile h3{color:#f8fafc;font-size:16px}
.profile span{display:block;color:#94a3b8;font-size:13px;margin-top:2px}
.profile button{margin-left:auto;background:%[1]s;border:none;color:#ffffff;border-radius:8px;padding:8px 16px;font-size:13px;font-weight:700}
.notice{border-left:4px solid %[2]s}
.notice h3{color:#f8fafc;font-size:15px;margin-top:10px}
.notice p{color:#94a3b8;font-size:13px;margin-top:6px;line-height:1.5}
.notice .actions{margin-top:14px;display:flex;gap:14px}
.notice .actions a{font-size:13px;font-weight:700;color:%[2]s;text-decoration:none}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main>
<h1>Basalt design system</h1>
<p class="sub">Card primitives — dark surface, elevation via borders, not shadows.</p>
<section class="kit">
  <div class="card metric"><h2>Deploys this week</h2><div class="value">241</div><span class="trend">▲ 18% vs last week</span></div>
  <div class="card profile"><div class="pic"></div><div><h3>Imani Park</h3><span>Staff engineer · Platform</span></div><button>Follow</button></div>
  <div class="card notice"><h2>Notification</h2><h3>Build cache nearly full</h3><p>The shared cache is at 92% of its 50 GB quota. Old artifacts will be evicted first.</p><div class="actions"><a href="#">Raise quota</a><a href="#">Dismiss</a></div></div>
  <div class="card metric"><h2>Open incidents</h2><div class="value">0</div><span class="trend">34 days clean</span></div>
</section>
</main>`

	return document("Basalt — Cards", css, body)
}

// compNavigation demonstrates header, breadcrumb, tab, and pagination
// patterns in one sheet.
func compNavigation(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#fafafa;padding:44px 56px}
h1{font-size:24px;color:#18181b;margin-bottom:26px}
.demo{background:#ffffff;border:1px solid #e4e4e7;border-radius:12px;margin-bottom:22px;overflow:hidden}
.demo .label{font-size:11px;text-transform:uppercase;letter-spacing:1.5px;color:#a1a1aa;padding:10px 18px;border-bottom:1px dashed #e4e4e7}
.appbar{display:grid;grid-template-columns:160px 1fr 160px;align-items:center;padding:14px 18px}
.appbar .brand{font-weight:800;color:%[1]s}
.appbar .links{display:flex;gap:22px;justify-content:center}
.appbar .links a{font-size:14px;color:#52525b;text-decoration:none}
.appbar .links a.on{color:%[1]s;font-weight:700}
.appbar .cta{justify-self:end;background:%[1]s;color:#ffffff;border-radius:8px;padding:8px 18px;font-size:13px;font-weight:700}
.crumbs{padding:14px 18px;font-size:14px;color:#71717a}
.crumbs a{color:%[2]s;text-decoration:none}
.tabs{display:flex;gap:4px;padding:10px 18px 0}
.tabs span{padding:10px 18px;font-size:14px;color:#71717a;border-radius:8px 8px 0 0}
.tabs span.sel{background:%[2]s14;color:%[2]s;font-weight:700;border-bottom:2px solid %[2]s}
.pager{display:flex;gap:8px;padding:16px 18px;align-items:center}
.pager span{min-width:34px;height:34px;border:1px solid #e4e4e7;border-radius:8px;display:flex;align-items:center;justify-content:center;font-size:13px;color:#52525b}
.pager span.now{background:%[3]s;border-color:%[3]s;color:#ffffff;font-weight:700}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main>
<h1>Wayfinder — navigation patterns</h1>
<section class="demo"><div class="label">App bar</div>
  <div class="appbar"><span class="brand">Atlas</span><nav class="links"><a class="on" href="#">Projects</a><a href="#">Activity</a><a href="#">Billing</a><a href="#">Docs</a></nav><span class="cta">New project</span></div>
</section>
<section class="demo"><div class="label">Breadcrumbs</div>
  <div class="crumbs"><a href="#">Workspaces</a> / <a href="#">acme-prod</a> / <a href="#">Pipelines</a> / nightly-build</div>
</section>
<section class="demo"><div class="label">Tabs</div>
  <div class="tabs"><span class="sel">Overview</span><span>Runs</span><span>Variables</span><span>Settings</span></div>
</section>
<section class="demo"><div class="label">Pagination</div>
  <div class="pager"><span>←</span><span>1</span><span class="now">2</span><span>3</span><span>…</span><span>12</span><span>→</span></div>
</section>
</main>`

	return document("Wayfinder — Navigation", css, body)
}

// compPricing is the classic three-tier table with a highlighted middle.
func compPricing(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#ffffff;padding:64px 48px;text-align:center}
h1{font-size:34px;color:#111827}
p.sub{margin-top:12px;color:#6b7280;font-size:17px}
.tiers{display:grid;grid-template-columns:repeat(3,280px);gap:24px;justify-content:center;margin-top:48px;text-align:left}
.tier{border:1px solid #e5e7eb;border-radius:16px;padding:32px}
.tier.hot{border:2px solid %[1]s;position:relative;box-shadow:0 20px 40px %[1]s22}
.tier.hot .flag{position:absolute;top:-13px;left:50%%;transform:translateX(-50%%);background:%[1]s;color:#ffffff;font-size:12px;font-weight:700;border-radius:999px;padding:4px 14px}
.tier h2{font-size:18px;color:#111827}
.tier .price{margin-top:14px;font-size:40px;font-weight:800;color:#111827}
.tier .price small{font-size:14px;color:#9ca3af;font-weight:400}
.tier ul{margin-top:22px;list-style:none}
.tier li{padding:7px 0;font-size:14px;color:#4b5563}
.tier li::before{content:'✓ ';color:%[3]s;font-weight:700}
.tier a{display:block;margin-top:26px;text-align:center;padding:12px 0;border-radius:10px;font-weight:700;font-size:14px;text-decoration:none;border:2px solid %[2]s;color:%[2]s}
.tier.hot a{background:%[1]s;border-color:%[1]s;color:#ffffff}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main>
<h1>Simple pricing, honest limits</h1>
<p class="sub">Every plan includes unlimited viewers and SSO. Prices in USD, billed yearly.</p>
<section class="tiers">
  <div class="tier">
    <h2>Starter</h2>
    <div class="price">$0<small>/mo</small></div>
    <ul><li>3 projects</li><li>1 GB artifact storage</li><li>Community support</li></ul>
    <a href="#">Start free</a>
  </div>
  <div class="tier hot">
    <span class="flag">Most popular</span>
    <h2>Team</h2>
    <div class="price">$24<small>/user/mo</small></div>
    <ul><li>Unlimited projects</li><li>100 GB artifact storage</li><li>Deploy previews</li><li>Priority support</li></ul>
    <a href="#">Start 14-day trial</a>
  </div>
  <div class="tier">
    <h2>Enterprise</h2>
    <div class="price">Custom</div>
    <ul><li>Dedicated cluster</li><li>Audit log export</li><li>99.95% SLA</li><li>Named support engineer</li></ul>
    <a href="#">Talk to us</a>
  </div>
</section>
</main>`

	return document("Pricing — Foundry", css, body)
}
