// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templates

import (
	"fmt"

	"designforge/internal/palette"
)

var ecommerceVariants = []Variant{
	{ID: "shop-product-grid", Produce: shopProductGrid},
	{ID: "shop-product-detail", Produce: shopProductDetail},
	{ID: "shop-cart-checkout", Produce: shopCartCheckout},
	{ID: "shop-storefront", Produce: shopStorefront},
}

// shopProductGrid is a filterable catalog page with a four-across card grid.
func shopProductGrid(p palette.Palette) string {
	css := fmt.Sprintf(`
header{display:flex;justify-content:space-between;align-items:center;padding:18px 48px;border-bottom:1px solid #e5e7eb}
.logo{font-weight:800;font-size:20px;color:#111827}
.logo span{color:%[1]s}
.cart{background:%[1]s;color:#ffffff;padding:9px 20px;border-radius:8px;font-size:14px;font-weight:600}
.filters{display:flex;gap:12px;padding:20px 48px}
.chip{border:1px solid #d1d5db;border-radius:999px;padding:7px 18px;font-size:13px;color:#374151}
.chip.on{background:%[2]s;border-color:%[2]s;color:#ffffff}
.grid{display:grid;grid-template-columns:repeat(4,minmax(180px,1fr));gap:24px;padding:12px 48px 56px}
.product{border:1px solid #e5e7eb;border-radius:14px;overflow:hidden}
.product .photo{height:170px;background:linear-gradient(145deg,%[1]s22,%[2]s33)}
.product .info{padding:16px}
.product h3{font-size:15px;color:#111827}
.product .maker{font-size:12px;color:#6b7280;margin-top:2px}
.product .row{display:flex;justify-content:space-between;align-items:center;margin-top:12px}
.product .price{font-weight:700;color:#111827}
.product .tag{font-size:11px;font-weight:700;color:%[3]s}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header><div class="logo">Fern<span>&amp;</span>Field</div><div class="cart">Cart · 2</div></header>
<main>
<div class="filters">
  <span class="chip on">All goods</span><span class="chip">Ceramics</span><span class="chip">Textiles</span><span class="chip">Wood</span><span class="chip">Under $50</span>
</div>
<section class="grid">
  <article class="product"><div class="photo"></div><div class="info"><h3>Stoneware pour-over set</h3><div class="maker">Kiln &amp; Co</div><div class="row"><span class="price">$68</span><span class="tag">NEW</span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Linen table runner</h3><div class="maker">Loom North</div><div class="row"><span class="price">$42</span><span class="tag">BACK</span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Walnut serving board</h3><div class="maker">Grain Studio</div><div class="row"><span class="price">$54</span><span class="tag"></span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Hand-dipped candles, pair</h3><div class="maker">Tallow &amp; Wick</div><div class="row"><span class="price">$24</span><span class="tag">LOW</span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Indigo tea towels</h3><div class="maker">Loom North</div><div class="row"><span class="price">$28</span><span class="tag"></span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Speckled mug</h3><div class="maker">Kiln &amp; Co</div><div class="row"><span class="price">$26</span><span class="tag">NEW</span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Olive wood spoons</h3><div class="maker">Grain Studio</div><div class="row"><span class="price">$19</span><span class="tag"></span></div></div></article>
  <article class="product"><div class="photo"></div><div class="info"><h3>Wool throw blanket</h3><div class="maker">Loom North</div><div class="row"><span class="price">$96</span><span class="tag">LAST</span></div></div></article>
</section>
</main>`

	return document("Fern & Field — Shop", css, body)
}

// shopProductDetail splits gallery and purchase panel across two columns.
func shopProductDetail(p palette.Palette) string {
	css := fmt.Sprintf(`
.crumbs{padding:20px 56px;font-size:13px;color:#6b7280}
.crumbs b{color:#111827}
.detail{display:grid;grid-template-columns:1.2fr 1fr;gap:56px;padding:12px 56px 64px}
.gallery .hero-img{height:420px;border-radius:16px;background:linear-gradient(160deg,%[1]s33,%[2]s44)}
.thumbs{display:flex;gap:12px;margin-top:14px}
.thumbs span{width:72px;height:72px;border-radius:10px;background:%[2]s22;border:2px solid transparent}
.thumbs span.sel{border-color:%[1]s}
.buy h1{font-size:30px;color:#111827}
.buy .rating{margin-top:8px;color:%[3]s;font-size:14px;font-weight:700}
.buy .price{font-size:26px;font-weight:800;color:#111827;margin-top:18px}
.buy .desc{margin-top:16px;color:#4b5563;line-height:1.7;font-size:15px}
.opts{margin-top:24px;display:flex;gap:10px}
.opts span{border:1px solid #d1d5db;border-radius:8px;padding:9px 16px;font-size:13px}
.opts span.sel{border-color:%[1]s;color:%[1]s;font-weight:700}
.add{margin-top:28px;display:block;width:100%%;background:%[1]s;color:#ffffff;border:none;padding:16px 0;border-radius:10px;font-size:16px;font-weight:700}
.note{margin-top:14px;font-size:12px;color:#6b7280;text-align:center}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<main>
<div class="crumbs">Home / Bags / <b>Canyon day pack</b></div>
<section class="detail">
  <div class="gallery">
    <div class="hero-img"></div>
    <div class="thumbs"><span class="sel"></span><span></span><span></span><span></span></div>
  </div>
  <div class="buy">
    <h1>Canyon day pack — 22 L</h1>
    <div class="rating">★★★★★ 4.8 · 312 reviews</div>
    <div class="price">$128</div>
    <p class="desc">Waxed canvas shell, full-grain leather straps, and a laptop sleeve that actually fits a 16-inch machine. Guaranteed for a decade of commutes and weekend scrambles.</p>
    <div class="opts"><span class="sel">Moss</span><span>Charcoal</span><span>Rust</span></div>
    <button class="add">Add to cart</button>
    <p class="note">Free exchanges · Carbon-neutral shipping · Ships in 2 days</p>
  </div>
</section>
</main>`

	return document("Canyon day pack — Terrafirm", css, body)
}

// shopCartCheckout shows line items beside a sticky order summary.
func shopCartCheckout(p palette.Palette) string {
	css := fmt.Sprintf(`
body{background:#fafaf9}
header{padding:22px 56px;border-bottom:1px solid #e7e5e4;background:#ffffff}
header .logo{font-weight:800;color:#1c1917;font-size:19px}
.checkout{display:grid;grid-template-columns:1.6fr 1fr;gap:40px;padding:40px 56px;align-items:start}
.items{background:#ffffff;border-radius:14px;border:1px solid #e7e5e4}
.items h1{font-size:20px;color:#1c1917;padding:22px 26px;border-bottom:1px solid #f5f5f4}
.item{display:flex;gap:18px;padding:20px 26px;border-bottom:1px solid #f5f5f4}
.item .pic{width:84px;height:84px;border-radius:10px;background:%[2]s22;flex-shrink:0}
.item h3{font-size:15px;color:#1c1917}
.item .variant{font-size:13px;color:#78716c;margin-top:4px}
.item .qty{margin-top:10px;font-size:13px;color:#44403c}
.item .amount{margin-left:auto;font-weight:700;color:#1c1917}
.summary{background:#ffffff;border-radius:14px;border:1px solid #e7e5e4;padding:26px}
.summary h2{font-size:17px;color:#1c1917}
.line{display:flex;justify-content:space-between;margin-top:14px;font-size:14px;color:#57534e}
.line.total{border-top:1px solid #e7e5e4;padding-top:14px;font-weight:800;color:#1c1917;font-size:16px}
.pay{margin-top:22px;display:block;width:100%%;background:%[1]s;color:#ffffff;border:none;padding:15px 0;border-radius:10px;font-weight:700;font-size:15px}
.promo{margin-top:12px;text-align:center;font-size:13px;color:%[3]s;font-weight:600}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<header><div class="logo">Alpenrose</div></header>
<main class="checkout">
<section class="items">
  <h1>Your cart</h1>
  <div class="item"><div class="pic"></div><div><h3>Merino crew sweater</h3><div class="variant">Heather grey · M</div><div class="qty">Qty 1</div></div><div class="amount">$110</div></div>
  <div class="item"><div class="pic"></div><div><h3>Alpine wool socks, 3-pack</h3><div class="variant">Mixed</div><div class="qty">Qty 2</div></div><div class="amount">$64</div></div>
  <div class="item"><div class="pic"></div><div><h3>Ridge beanie</h3><div class="variant">Pine</div><div class="qty">Qty 1</div></div><div class="amount">$38</div></div>
</section>
<aside class="summary">
  <h2>Order summary</h2>
  <div class="line"><span>Subtotal</span><span>$212.00</span></div>
  <div class="line"><span>Shipping</span><span>Free</span></div>
  <div class="line"><span>Tax</span><span>$16.96</span></div>
  <div class="line total"><span>Total</span><span>$228.96</span></div>
  <button class="pay">Continue to payment</button>
  <div class="promo">Add $38 more for a free gift</div>
</aside>
</main>`

	return document("Alpenrose — Cart", css, body)
}

// shopStorefront leads with a seasonal banner over a three-column
// collection strip.
func shopStorefront(p palette.Palette) string {
	css := fmt.Sprintf(`
.announce{background:%[1]s;color:#ffffff;text-align:center;padding:9px;font-size:13px;font-weight:600}
header{display:flex;justify-content:space-between;align-items:center;padding:20px 52px}
.logo{font-size:22px;font-weight:800;color:#111827;letter-spacing:-0.5px}
nav{display:flex;gap:26px}
nav a{color:#374151;text-decoration:none;font-size:14px;font-weight:500}
.season{display:grid;grid-template-columns:2fr 1fr 1fr;gap:16px;padding:8px 52px 40px}
.season .feature{grid-row:span 2;border-radius:18px;min-height:420px;background:linear-gradient(150deg,%[2]s,%[1]s);color:#ffffff;padding:36px;display:flex;flex-direction:column;justify-content:flex-end}
.season .feature h1{font-size:36px}
.season .feature a{margin-top:16px;align-self:flex-start;background:#ffffff;color:#111827;padding:11px 26px;border-radius:8px;font-weight:700;text-decoration:none;font-size:14px}
.season .mini{border-radius:18px;min-height:200px;background:%[3]s22;padding:24px;display:flex;flex-direction:column;justify-content:flex-end}
.season .mini h2{font-size:18px;color:#111827}
.season .mini span{font-size:13px;color:#6b7280;margin-top:4px}`,
		p.Primary, p.Secondary, p.Accent)

	body := `<div class="announce">Spring refresh — free shipping on orders over $75</div>
<header>
  <div class="logo">Meridian</div>
  <nav><a href="#">New in</a><a href="#">Apparel</a><a href="#">Home</a><a href="#">Sale</a></nav>
</header>
<main class="season">
  <section class="feature">
    <h1>The linen edit</h1>
    <a href="#">Shop the collection</a>
  </section>
  <section class="mini"><h2>Ceramics</h2><span>38 pieces</span></section>
  <section class="mini"><h2>Garden tools</h2><span>21 pieces</span></section>
  <section class="mini"><h2>Bath &amp; body</h2><span>44 pieces</span></section>
  <section class="mini"><h2>Last chance</h2><span>Up to 60% off</span></section>
</main>`

	return document("Meridian — Storefront", css, body)
}
