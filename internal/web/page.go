package web

import "html/template"

const pageTemplate = `<!DOCTYPE html>
<html lang="en" class="dark">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>Zorah Web Spider</title>
<script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="bg-gray-900 text-gray-100 min-h-screen">
<main class="max-w-3xl mx-auto p-6 space-y-4">
<h1 class="text-2xl font-bold">Zorah Web Spider</h1>
<form id="crawl-form" method="post" action="/" class="flex gap-2"
  onsubmit="var b=document.getElementById('crawl-button');b.disabled=true;b.classList.add('opacity-50','cursor-not-allowed');document.getElementById('button-text').textContent='Crawling...';document.getElementById('spinner').classList.remove('hidden');">
<input id="start-url" name="url" type="text" value="{{.InputValue}}" placeholder="https://example.com"
  class="flex-1 p-2 rounded bg-gray-800 border border-gray-600">
<button id="crawl-button" type="submit" class="px-4 py-2 rounded bg-blue-600{{if .Busy}} opacity-50 cursor-not-allowed{{end}}"{{if .Busy}} disabled{{end}}>
<span id="button-text">{{.ButtonLabel}}</span>
<span id="spinner" class="{{if not .Busy}}hidden {{end}}animate-spin">&#8635;</span>
</button>
</form>
<p id="status-message" class="text-sm text-gray-400">{{.Status}}</p>
<div id="results-container" class="space-y-3 max-h-[70vh] overflow-y-auto">{{.Results}}</div>
</main>
</body>
</html>
`

var page = template.Must(template.New("page").Parse(pageTemplate))
