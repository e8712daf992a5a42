// Package loader provides composable page loaders for browser-automation
// test setups: small declarative steps that bring a page into an expected
// state (loaded, logged in) before test assertions run.
//
// A Loader is a single step over a playwright.Page. The built-in loaders are:
//
//   - Page     – navigate to a URL and wait for the load state
//   - Login    – ensure the user is logged in, filling the login form only
//     when a logged-in marker is not already present
//   - Sequence – run several loaders in order
//
// Sessions wrap the playwright lifecycle (runner, browser, context, page),
// applying the window geometry from config.Settings. Scenario files let test
// suites declare loader sequences in YAML instead of code.
//
// Usage:
//
//	settings, err := config.LoadSettings()
//	// ...
//	session, err := loader.Start(loader.OptionsFromSettings(settings))
//	// ...
//	defer session.Close()
//
//	err = session.Run(ctx, loader.Sequence{
//	    loader.Login{URL: settings.BaseURL + "/login", User: settings.LoginUser, Password: settings.LoginPassword},
//	    loader.Page{URL: settings.BaseURL + "/dashboard"},
//	})
package loader
