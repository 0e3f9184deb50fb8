package server

import "net/http"

// Browser-facing pages. Unauthenticated: the login form is cosmetic and
// simply forwards to the dashboard.

func handleLoginPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	html := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ThreatLens - Sign In</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; display: flex; justify-content: center; align-items: center; min-height: 100vh; margin: 0; background: #f4f6f8; color: #333; }
        .card { background: #fff; padding: 32px 40px; border-radius: 8px; box-shadow: 0 2px 8px rgba(0,0,0,0.1); width: 320px; }
        h1 { color: #1a73e8; font-size: 1.4em; margin-top: 0; }
        input { width: 100%; padding: 10px; margin: 8px 0; border: 1px solid #ccc; border-radius: 4px; box-sizing: border-box; }
        button { width: 100%; padding: 10px; margin-top: 12px; background: #1a73e8; color: #fff; border: none; border-radius: 4px; cursor: pointer; font-size: 1em; }
    </style>
</head>
<body>
    <div class="card">
        <h1>ThreatLens</h1>
        <form onsubmit="window.location='/dashboard'; return false;">
            <input type="text" placeholder="Username" autocomplete="username">
            <input type="password" placeholder="Password" autocomplete="current-password">
            <button type="submit">Sign In</button>
        </form>
    </div>
</body>
</html>`

	w.Write([]byte(html))
}

func handleDashboardPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	html := `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>ThreatLens - Dashboard</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; max-width: 1000px; margin: 0 auto; padding: 20px; color: #333; }
        h1 { color: #1a73e8; }
        h2 { color: #444; margin-top: 30px; }
        input { padding: 10px; width: 60%; border: 1px solid #ccc; border-radius: 4px; }
        button { padding: 10px 20px; background: #1a73e8; color: #fff; border: none; border-radius: 4px; cursor: pointer; }
        table { border-collapse: collapse; width: 100%; margin-top: 10px; }
        th, td { border: 1px solid #ddd; padding: 8px; text-align: left; }
        th { background: #f4f6f8; }
        .harmful { color: #c5221f; font-weight: bold; }
        #status { color: #666; margin: 10px 0; }
    </style>
</head>
<body>
    <h1>ThreatLens Dashboard</h1>
    <input id="q" type="text" placeholder="Search query, e.g. crypto scam">
    <button onclick="analyze()">Analyze</button>
    <div id="status"></div>

    <h2>Articles</h2>
    <table id="articles"><thead><tr><th>Source</th><th>Title</th><th>Harmful</th><th>Sentiment</th><th>Intent</th><th>Reason</th></tr></thead><tbody></tbody></table>

    <h2>Flagged Sources</h2>
    <table id="profiles"><thead><tr><th>Source</th><th>Flags</th><th>Last Seen</th></tr></thead><tbody></tbody></table>

    <h2>Keyword Trends</h2>
    <table id="trends"><thead><tr><th>Keyword</th><th>Count</th></tr></thead><tbody></tbody></table>

    <script>
        function fill(id, rows, cols) {
            const body = document.querySelector('#' + id + ' tbody');
            body.innerHTML = '';
            for (const row of rows) {
                const tr = document.createElement('tr');
                for (const col of cols) {
                    const td = document.createElement('td');
                    td.textContent = row[col] === true ? 'yes' : row[col] === false ? '' : (row[col] || '');
                    if (col === 'harmful' && row[col]) td.className = 'harmful';
                    tr.appendChild(td);
                }
                body.appendChild(tr);
            }
        }
        async function refreshCounters() {
            const profiles = await (await fetch('/api/profiles')).json();
            fill('profiles', profiles, ['source_name', 'flag_count', 'last_seen']);
            const trends = await (await fetch('/api/trends')).json();
            fill('trends', trends, ['keyword', 'count']);
        }
        async function analyze() {
            const q = document.getElementById('q').value;
            const status = document.getElementById('status');
            status.textContent = 'Analyzing...';
            const resp = await fetch('/api/analyze?q=' + encodeURIComponent(q));
            const data = await resp.json();
            if (!resp.ok) { status.textContent = data.error || 'request failed'; return; }
            status.textContent = data.length + ' articles analyzed';
            fill('articles', data, ['source', 'title', 'harmful', 'gemini_sentiment', 'gemini_intent', 'gemini_reason']);
            refreshCounters();
        }
        refreshCounters();
    </script>
</body>
</html>`

	w.Write([]byte(html))
}
