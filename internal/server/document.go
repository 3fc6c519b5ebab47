package server

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	siteTitle       = "Vaibhav Shukla | Full Stack Developer"
	siteDescription = "Portfolio of Vaibhav Shukla: featured projects, skills and contact."
	wasmPath        = "/app.wasm"
	bootPath        = "/boot.js"
)

// revealWithoutScript shows every entrance-transition target when the wasm client
// never runs, since the pre-rendered markup is in its hidden state.
const revealWithoutScript = `[data-motion]{opacity:1 !important;transform:none !important}` +
	`#mobile-menu[data-state=closed]{display:none}`

// bootScript starts the Go runtime with the wasm bundle. It expects wasm_exec.js
// to have defined the Go class.
const bootScript = `(async () => {
  const go = new Go();
  const source = await WebAssembly.instantiateStreaming(fetch("` + wasmPath + `"), go.importObject);
  go.run(source.instance);
})().catch((err) => console.error("folio: failed to start", err));
`

// document is the host page. body fills the #app mount point.
func document(title string, body g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(siteDescription)),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href("/styles.css")),
				Link(Rel("icon"), Href("/favicon.ico")),
				NoScript(StyleEl(g.Raw(revealWithoutScript))),
			),
			Body(
				Div(ID("app"), body),
				Script(Src("/wasm_exec.js")),
				Script(Src(bootPath), Defer()),
			),
		),
	)
}

// notFoundBody is the markup of the 404 page.
func notFoundBody() g.Node {
	return Main(Class("min-h-screen flex flex-col items-center justify-center gap-6 bg-white"),
		H1(Class("text-4xl font-bold"), g.Text("Page not found")),
		P(Class("text-lg text-gray-600"), g.Text("The page you are looking for does not exist.")),
		A(Href("/"), Class("px-8 py-3 bg-blue-600 text-white rounded-lg font-medium"), g.Text("Back to home")),
	)
}
