package svg

const streakCardTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="495" height="195" viewBox="0 0 495 195">
  <defs>
    <filter id="glow" x="-50%" y="-50%" width="200%" height="200%">
      <feGaussianBlur in="SourceGraphic" stdDeviation="3" result="blur"/>
      <feMerge>
        <feMergeNode in="blur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
    <mask id="mask_out_ring_behind_fire">
      <rect width="495" height="195" fill="white"/>
      <ellipse cx="247.5" cy="36" rx="13" ry="18" fill="black"/>
    </mask>
  </defs>
  <style>
    @keyframes fadein {
      0% { opacity: 0; }
      100% { opacity: 1; }
    }
    @keyframes glowPulse {
      0% { opacity: 0.6; }
      50% { opacity: 1; }
      100% { opacity: 0.6; }
    }
    @keyframes currstreak {
      0% { font-size: 3px; opacity: 0.2; }
      80% { font-size: 34px; opacity: 1; }
      100% { font-size: 28px; opacity: 1; }
    }
    .stat { font: 700 28px 'Segoe UI', Ubuntu, Sans-Serif; fill: {{.Colors.Text}}; text-anchor: middle; animation: fadein 0.6s forwards; }
    .label { font: 400 14px 'Segoe UI', Ubuntu, Sans-Serif; fill: {{.Colors.Text}}; text-anchor: middle; opacity: 0; animation: fadein 0.8s forwards; }
    .range { font: 400 12px 'Segoe UI', Ubuntu, Sans-Serif; fill: {{.Colors.Text}}; text-anchor: middle; opacity: 0; animation: fadein 1s forwards; }
    .circle-label { font: 700 28px 'Segoe UI', Ubuntu, Sans-Serif; fill: orange; text-anchor: middle; dominant-baseline: middle; filter: url(#glow); animation: currstreak 0.6s forwards; }
    .ring { stroke: orange; filter: url(#glow); animation: glowPulse 2s infinite; }
    .divider { stroke: {{.Colors.Text}}; stroke-opacity: 0.4; stroke-width: 1; }
  </style>
  <title>{{esc .Username}}'s GitHub contribution streak</title>

  <rect width="100%" height="100%" fill="{{.Colors.Background}}" stroke="{{.Stroke}}" rx="4.5"/>

  <line x1="171" y1="30" x2="171" y2="165" class="divider"/>
  <line x1="324" y1="30" x2="324" y2="165" class="divider"/>

  <text x="95" y="85" class="stat">{{.Total}}</text>
  <text x="95" y="115" class="label">Total Contributions</text>
  <text x="95" y="135" class="range">{{esc .TotalRange}}</text>

  <g mask="url(#mask_out_ring_behind_fire)">
    <circle cx="247.5" cy="79" r="40" stroke-width="5" class="ring" fill="none"/>
  </g>

  <g transform="translate(247.5, 23.5)" style="opacity: 0; animation: fadein 0.5s linear forwards 0.6s">
    <path d="M -12 -0.5 L 15 -0.5 L 15 23.5 L -12 23.5 Z" fill="none"/>
    <path d="M 1.5 0.67 C 1.5 0.67 2.24 3.32 2.24 5.47 C 2.24 7.53 0.89 9.2 -1.17 9.2 C -3.23 9.2 -4.79 7.53 -4.79 5.47 L -4.76 5.11 C -6.78 7.51 -8 10.62 -8 13.99 C -8 18.41 -4.42 22 0 22 C 4.42 22 8 18.41 8 13.99 C 8 8.6 5.41 3.79 1.5 0.67 Z M -0.29 19 C -2.07 19 -3.51 17.6 -3.51 15.86 C -3.51 14.24 -2.46 13.1 -0.7 12.74 C 1.07 12.38 2.9 11.53 3.92 10.16 C 4.31 11.45 4.51 12.81 4.51 14.2 C 4.51 16.85 2.36 19 -0.29 19 Z" fill="orange" filter="url(#glow)"/>
  </g>

  <text x="247.5" y="84" class="circle-label">{{.Current}}</text>
  <text x="247.5" y="144" class="label" style="fill: orange">Current Streak</text>
  <text x="247.5" y="164" class="range">{{esc .CurrentRange}}</text>

  <text x="400" y="85" class="stat">{{.Longest}}</text>
  <text x="400" y="115" class="label">Longest Streak</text>
  <text x="400" y="135" class="range">{{esc .LongestRange}}</text>
</svg>
`

const errorCardTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="495" height="120" viewBox="0 0 495 120">
  <style>
    .text { font: 600 16px 'Segoe UI', Ubuntu, Sans-Serif; fill: {{.Colors.Title}}; }
    .small { font: 600 12px 'Segoe UI', Ubuntu, Sans-Serif; fill: {{.Colors.Text}}; }
    .gray { fill: #858585; }
  </style>
  <rect x="0.5" y="0.5" width="494" height="99%" rx="4.5" fill="{{.Colors.Background}}" stroke="{{.Stroke}}"/>
  <text x="25" y="45" class="text">{{esc .Message}}</text>
  <text x="25" y="55" class="text small">
    <tspan x="25" dy="18">{{esc .Secondary}}</tspan>
  </text>
</svg>
`
