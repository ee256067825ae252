// Copyright 2026 The Lakedash Authors
// SPDX-License-Identifier: MIT

package page

const pageTemplate = `{{define "panel"}}<div class="chart-box"><h3>{{.Title}}</h3><div class="chart" data-chart="{{.Name}}"></div></div>{{end}}
{{- define "rows"}}{{range .}}<div class="row row-{{len .}}">{{range .}}{{template "panel" .}}{{end}}</div>
{{end}}{{end -}}
<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Theme.Title}}</title>
<style>
:root {
  --primary: {{.Theme.Primary}}; --secondary: {{.Theme.Secondary}}; --bg: {{.Theme.Background}};
  --fg: #1a1a2e; --card-bg: #fff; --border: #dee2e6; --muted: #6c757d;
}
* { box-sizing: border-box; margin: 0; padding: 0; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; background: var(--bg); color: var(--fg); line-height: 1.5; }
header { background: var(--primary); color: #fff; padding: 1.25rem 1.5rem; }
header h1 { font-size: 1.5rem; margin-bottom: .25rem; }
header p { font-size: .875rem; opacity: .85; }
header nav { margin-top: .5rem; font-size: .8125rem; }
header nav a { color: #fff; margin-right: 1rem; }
main { padding: 1rem 1.5rem; }
.row { display: grid; gap: 1rem; margin-bottom: 1rem; }
.row-1 { grid-template-columns: 1fr; }
.row-2 { grid-template-columns: repeat(2, 1fr); }
.row-3 { grid-template-columns: repeat(3, 1fr); }
@media (max-width: 900px) { .row-2, .row-3 { grid-template-columns: 1fr; } }
.chart-box { background: var(--card-bg); border: 1px solid var(--border); border-radius: 8px; padding: 1rem; box-shadow: 0 1px 3px rgba(0,0,0,.06); }
.chart-box h3 { font-size: .9375rem; color: var(--primary); margin-bottom: .5rem; }
.chart svg text { font-size: 11px; }
.empty { color: var(--muted); font-size: .875rem; padding: 2rem 0; text-align: center; }
.layout-side { display: flex; min-height: 100vh; }
.sidebar { width: 260px; flex-shrink: 0; background: var(--primary); color: #fff; padding: 1.25rem 1rem; }
.sidebar h2 { font-size: 1.125rem; margin-bottom: 1rem; }
.sidebar a { display: block; color: #fff; text-decoration: none; padding: .375rem .5rem; border-radius: 4px; }
.sidebar a:hover { background: var(--secondary); }
.sidebar-button { display: block; width: 100%; text-align: left; margin-bottom: .5rem; padding: .5rem .75rem; border: 0; border-radius: 4px; background: rgba(255,255,255,.1); color: #fff; font-size: .875rem; cursor: pointer; }
.sidebar-button:hover, .sidebar-button.active { background: var(--secondary); }
.content { flex: 1; min-width: 0; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(180px, 1fr)); gap: 1rem; margin-bottom: 1.5rem; }
.card { background: var(--card-bg); border-left: 4px solid var(--secondary); border-radius: 8px; padding: 1rem; }
.card .label { font-size: .75rem; color: var(--muted); text-transform: uppercase; }
.card .value { font-size: 1.75rem; font-weight: 700; color: var(--primary); }
.card .change { font-size: .8125rem; color: #28a745; }
section.block { margin-bottom: 2rem; scroll-margin-top: 1rem; }
section.block h2 { font-size: 1.25rem; color: var(--primary); border-bottom: 2px solid var(--secondary); padding-bottom: .25rem; margin-bottom: 1rem; }
.welcome { display: flex; align-items: center; justify-content: center; min-height: 60vh; color: var(--primary); }
footer { color: var(--muted); font-size: .75rem; padding: 0 1.5rem 1rem; }
</style>
</head>
<body class="layout-{{.Layout}}">
{{- if eq .Layout "grid"}}
<header>
  <h1>{{.Theme.Title}}</h1>
  <p>{{.Theme.Subtitle}}</p>
  {{if .Nav}}<nav><a href="/grid">Grid</a><a href="/sections">Sections</a><a href="/sidebar">Interactive</a></nav>{{end}}
</header>
<main id="grid">
{{template "rows" .Rows}}</main>
{{- else if eq .Layout "sections"}}
<div class="layout-side">
<aside class="sidebar">
  <h2>{{.Theme.Title}}</h2>
  <nav>{{range .Sections}}<a href="#{{.ID}}">{{.Title}}</a>{{end}}</nav>
  {{if .Nav}}<nav><a href="/grid">Grid</a><a href="/sidebar">Interactive</a></nav>{{end}}
</aside>
<div class="content">
<header>
  <h1>{{.Theme.Title}}</h1>
  <p>{{.Theme.Subtitle}}</p>
</header>
<main>
<div class="cards" id="summary">
{{range .Cards}}  <div class="card"><div class="label">{{.Title}}</div><div class="value">{{.Value}}</div><div class="change">{{.Change}}</div></div>
{{end}}</div>
{{range .Sections}}<section class="block" id="{{.ID}}">
<h2>{{.Title}}</h2>
{{template "rows" .Rows}}</section>
{{end}}</main>
</div>
</div>
{{- else}}
<div class="layout-side">
<aside class="sidebar">
  <h2>{{.Theme.Title}}</h2>
  <form method="post" action="{{.SelectAction}}">
{{range .Controls}}    <button type="submit" name="control" value="{{.ID}}" id="{{.ID}}" class="sidebar-button{{if .Active}} active{{end}}">{{.Label}}</button>
{{end}}  </form>
  {{if .Nav}}<nav><a href="/grid">Grid</a><a href="/sections">Sections</a></nav>{{end}}
</aside>
<main class="content" id="page-content">
{{with .Selected}}{{template "panel" .}}{{else}}<div class="welcome"><h2>{{.Welcome}}</h2></div>{{end}}
</main>
</div>
{{- end}}
{{if .GeneratedAt}}<footer>Generated {{.GeneratedAt}}</footer>{{end}}
<script>
var charts = {{json .ChartData}};
var SVG_NS = "http://www.w3.org/2000/svg";
var WIDTH = 480;

function svgEl(tag, attrs) {
  var el = document.createElementNS(SVG_NS, tag);
  for (var k in attrs) el.setAttribute(k, attrs[k]);
  return el;
}

function text(x, y, s, attrs) {
  var t = svgEl("text", {x:x, y:y, fill:"currentColor"});
  for (var k in attrs) t.setAttribute(k, attrs[k]);
  t.textContent = s;
  return t;
}

function short(s, n) { return s.length > n ? s.slice(0, n-2)+"..." : s; }
function fmt(v) { return String(Math.round(v*100)/100); }

function fillFor(spec, si, pi) {
  var s = spec.series[si], has = spec.colors && spec.colors.length;
  if (!spec.grouped && has) return spec.colors[pi % spec.colors.length];
  if (s.color) return s.color;
  if (!has) return "var(--secondary)";
  return spec.colors[pi % spec.colors.length];
}

function legendItems(v) {
  var spec = v.spec, items = [];
  if (spec.series.length > 1 || spec.grouped) {
    for (var i = 0; i < spec.series.length; i++) items.push({label:spec.series[i].name, color:fillFor(spec, i, 0)});
    return items;
  }
  var pts = spec.series.length ? spec.series[0].points : [];
  for (var j = 0; j < pts.length; j++) items.push({label:pts[j].label, color:fillFor(spec, 0, j)});
  return items;
}

function legend(svg, x, y, v) {
  if (!v.spec.show_legend) return;
  if (v.spec.legend_title) { svg.appendChild(text(x, y, v.spec.legend_title, {"font-weight":"bold"})); y += 18; }
  var items = legendItems(v);
  for (var i = 0; i < items.length; i++) {
    svg.appendChild(svgEl("rect", {x:x, y:y-9, width:10, height:10, fill:items[i].color, rx:2}));
    svg.appendChild(text(x+14, y, short(items[i].label, 20)));
    y += 18;
  }
}

function frame(spec) {
  return svgEl("svg", {width:"100%", viewBox:"0 0 "+WIDTH+" "+spec.height, role:"img"});
}

function renderPie(el, v) {
  var spec = v.spec, pts = spec.series.length ? spec.series[0].points : [];
  var total = 0;
  for (var i = 0; i < pts.length; i++) total += pts[i].value;
  if (!total) return empty(el);
  var svg = frame(spec);
  var r = spec.height/2 - 20, cx = r + 20, cy = spec.height/2, angle = -Math.PI/2;
  for (var j = 0; j < pts.length; j++) {
    if (pts[j].value <= 0) continue;
    var slice = (pts[j].value/total)*Math.PI*2, shape;
    if (slice >= Math.PI*2 - 1e-9) {
      shape = svgEl("circle", {cx:cx, cy:cy, r:r, fill:fillFor(spec, 0, j)});
    } else {
      var x1 = cx+r*Math.cos(angle), y1 = cy+r*Math.sin(angle);
      angle += slice;
      var x2 = cx+r*Math.cos(angle), y2 = cy+r*Math.sin(angle);
      var large = slice > Math.PI ? 1 : 0;
      shape = svgEl("path", {d:"M"+cx+","+cy+" L"+x1+","+y1+" A"+r+","+r+" 0 "+large+",1 "+x2+","+y2+" Z", fill:fillFor(spec, 0, j)});
    }
    var tip = svgEl("title", {});
    tip.textContent = pts[j].label+": "+fmt(pts[j].value)+" ("+fmt(pts[j].value/total*100)+"%)";
    shape.appendChild(tip);
    svg.appendChild(shape);
  }
  legend(svg, cx + r + 24, 20, v);
  el.appendChild(svg);
}

function plotBox(spec, horizontal) {
  var right = WIDTH - (spec.show_legend ? 150 : 10);
  return {left: horizontal ? 120 : 50, right: right, top: 16, bottom: spec.height - (horizontal ? 34 : 50)};
}

function axes(svg, spec, b, horizontal, max) {
  var ticks = 4;
  for (var i = 0; i <= ticks; i++) {
    var val = max*i/ticks;
    if (horizontal) {
      var x = b.left + (b.right-b.left)*i/ticks;
      if (spec.show_grid) svg.appendChild(svgEl("line", {x1:x, y1:b.top, x2:x, y2:b.bottom, stroke:"var(--border)"}));
      svg.appendChild(text(x, b.bottom+14, fmt(val), {"text-anchor":"middle"}));
    } else {
      var y = b.bottom - (b.bottom-b.top)*i/ticks;
      if (spec.show_grid) svg.appendChild(svgEl("line", {x1:b.left, y1:y, x2:b.right, y2:y, stroke:"var(--border)"}));
      svg.appendChild(text(b.left-6, y+4, fmt(val), {"text-anchor":"end"}));
    }
  }
  svg.appendChild(svgEl("line", {x1:b.left, y1:b.bottom, x2:b.right, y2:b.bottom, stroke:"currentColor"}));
  svg.appendChild(svgEl("line", {x1:b.left, y1:b.top, x2:b.left, y2:b.bottom, stroke:"currentColor"}));
  if (spec.x_axis) svg.appendChild(text((b.left+b.right)/2, spec.height-4, spec.x_axis, {"text-anchor":"middle"}));
  if (spec.y_axis) svg.appendChild(text(12, (b.top+b.bottom)/2, spec.y_axis, {"text-anchor":"middle", transform:"rotate(-90 12 "+((b.top+b.bottom)/2)+")"}));
}

function catIndex(cats) {
  var m = {};
  for (var i = 0; i < cats.length; i++) m[cats[i]] = i;
  return m;
}

function renderBars(el, v, horizontal) {
  var spec = v.spec, cats = v.categories, idx = catIndex(cats), max = v.max || 1;
  var svg = frame(spec), b = plotBox(spec, horizontal);
  var span = horizontal ? b.bottom-b.top : b.right-b.left, depth = horizontal ? b.right-b.left : b.bottom-b.top;
  var band = span / cats.length, bw = band*0.8 / spec.series.length;
  axes(svg, spec, b, horizontal, max);
  for (var si = 0; si < spec.series.length; si++) {
    var pts = spec.series[si].points;
    for (var pi = 0; pi < pts.length; pi++) {
      var off = band*idx[pts[pi].label] + band*0.1 + si*bw, len = Math.max(pts[pi].value,0)/max*depth;
      var rect = horizontal
        ? svgEl("rect", {x:b.left, y:b.top+off, width:len, height:bw, fill:fillFor(spec, si, pi)})
        : svgEl("rect", {x:b.left+off, y:b.bottom-len, width:bw, height:len, fill:fillFor(spec, si, pi)});
      var tip = svgEl("title", {});
      tip.textContent = (spec.series.length > 1 ? spec.series[si].name+" / " : "")+pts[pi].label+": "+fmt(pts[pi].value);
      rect.appendChild(tip);
      svg.appendChild(rect);
    }
  }
  for (var c = 0; c < cats.length; c++) {
    var mid = band*c + band/2;
    svg.appendChild(horizontal
      ? text(b.left-6, b.top+mid+4, short(cats[c], 20), {"text-anchor":"end"})
      : text(b.left+mid, b.bottom+14, short(cats[c], 14), {"text-anchor":"middle"}));
  }
  legend(svg, b.right+14, 20, v);
  el.appendChild(svg);
}

function renderLines(el, v, area) {
  var spec = v.spec, cats = v.categories, idx = catIndex(cats), max = v.max || 1;
  var svg = frame(spec), b = plotBox(spec, false);
  var step = cats.length > 1 ? (b.right-b.left)/(cats.length-1) : 0;
  var xAt = function(i) { return cats.length > 1 ? b.left + i*step : (b.left+b.right)/2; };
  var yAt = function(val) { return b.bottom - Math.max(val,0)/max*(b.bottom-b.top); };
  axes(svg, spec, b, false, max);
  for (var si = 0; si < spec.series.length; si++) {
    var pts = spec.series[si].points.slice().sort(function(a, c){ return idx[a.label]-idx[c.label]; });
    if (!pts.length) continue;
    var color = spec.series[si].color || (spec.colors && spec.colors.length ? spec.colors[si % spec.colors.length] : "var(--secondary)");
    var coords = [];
    for (var i = 0; i < pts.length; i++) coords.push(xAt(idx[pts[i].label])+","+yAt(pts[i].value));
    if (area) {
      var poly = [xAt(idx[pts[0].label])+","+b.bottom].concat(coords, [xAt(idx[pts[pts.length-1].label])+","+b.bottom]);
      svg.appendChild(svgEl("polygon", {points:poly.join(" "), fill:color, "fill-opacity":"0.35"}));
    }
    svg.appendChild(svgEl("polyline", {points:coords.join(" "), fill:"none", stroke:color, "stroke-width":2}));
    for (var j = 0; j < pts.length; j++) {
      var dot = svgEl("circle", {cx:xAt(idx[pts[j].label]), cy:yAt(pts[j].value), r:3, fill:color});
      var tip = svgEl("title", {});
      tip.textContent = spec.series[si].name+" / "+pts[j].label+": "+fmt(pts[j].value);
      dot.appendChild(tip);
      svg.appendChild(dot);
    }
  }
  for (var c = 0; c < cats.length; c++) svg.appendChild(text(xAt(c), b.bottom+14, short(cats[c], 14), {"text-anchor":"middle"}));
  legend(svg, b.right+14, 20, v);
  el.appendChild(svg);
}

function empty(el) {
  var p = document.createElement("p");
  p.className = "empty";
  p.textContent = "No data";
  el.appendChild(p);
}

(function(){
  var nodes = document.querySelectorAll("[data-chart]");
  for (var i = 0; i < nodes.length; i++) {
    var v = charts[nodes[i].getAttribute("data-chart")];
    if (!v) continue;
    if (!v.categories.length) { empty(nodes[i]); continue; }
    switch (v.spec.kind) {
    case "pie": renderPie(nodes[i], v); break;
    case "barh": renderBars(nodes[i], v, true); break;
    case "line": renderLines(nodes[i], v, false); break;
    case "area": renderLines(nodes[i], v, true); break;
    default: renderBars(nodes[i], v, false);
    }
  }
})();
</script>
</body>
</html>`
