package server

func (s *Server) initRoutes() {
	// Site pages
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAcronymPage, ChainMiddleware(s.AcronymPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteUsersPage, ChainMiddleware(s.UsersPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteUserPage, ChainMiddleware(s.UserPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCategoriesPg, ChainMiddleware(s.CategoriesPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteCategoryPage, ChainMiddleware(s.CategoryPageHandler(), s.HTMLMiddleware()...))

	// Acronym forms, logged-in browsers only
	s.RegisterRouteHandler("GET "+RouteAcronymCreate, ChainMiddleware(s.CreateAcronymGetHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteHandler("POST "+RouteAcronymCreate, ChainMiddleware(s.CreateAcronymPostHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteHandler("GET "+RouteAcronymEdit, ChainMiddleware(s.EditAcronymGetHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteHandler("POST "+RouteAcronymEdit, ChainMiddleware(s.EditAcronymPostHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))
	s.RegisterRouteHandler("POST "+RouteAcronymDelete, ChainMiddleware(s.DeleteAcronymHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))

	// Password login and registration
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginGetHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogin, ChainMiddleware(s.LoginPostHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteRegister, ChainMiddleware(s.RegisterGetHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteRegister, ChainMiddleware(s.RegisterPostHandler(), s.HTMLMiddleware()...))

	// Delegated login
	s.RegisterRouteHandler("GET "+RouteLoginGoogle, ChainMiddleware(s.OAuthLoginHandler("google"), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteLoginGitHub, ChainMiddleware(s.OAuthLoginHandler("github"), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteGoogleCallback, ChainMiddleware(s.OAuthCallbackHandler("google", RouteLoginGoogle), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteGitHubCallback, ChainMiddleware(s.OAuthCallbackHandler("github", RouteLoginGitHub), s.HTMLMiddleware()...))

	// Password reset
	s.RegisterRouteHandler("GET "+RouteForgotPassword, ChainMiddleware(s.ForgotPasswordGetHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteForgotPassword, ChainMiddleware(s.ForgotPasswordPostHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteResetPassword, ChainMiddleware(s.ResetPasswordGetHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteResetPassword, ChainMiddleware(s.ResetPasswordPostHandler(), s.HTMLMiddleware()...))

	// API, users
	s.RegisterRouteHandler("POST "+RouteAPIUsers, ChainMiddleware(s.APICreateUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIUsers, ChainMiddleware(s.APIListUsersHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIUserLogin, ChainMiddleware(s.APIUserLoginHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIUser, ChainMiddleware(s.APIGetUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIUserAcronyms, ChainMiddleware(s.APIUserAcronymsHandler(), s.APIMiddleware()...))

	// API, acronyms
	s.RegisterRouteHandler("GET "+RouteAPIAcronyms, ChainMiddleware(s.APIListAcronymsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIAcronyms, ChainMiddleware(s.APICreateAcronymHandler(), s.APIMiddleware(s.RequireTokenAuth())...))
	s.RegisterRouteHandler("GET "+RouteAPIAcronymSearch, ChainMiddleware(s.APISearchAcronymsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIAcronymFirst, ChainMiddleware(s.APIFirstAcronymHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIAcronymSorted, ChainMiddleware(s.APISortedAcronymsHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIAcronym, ChainMiddleware(s.APIGetAcronymHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("PUT "+RouteAPIAcronym, ChainMiddleware(s.APIUpdateAcronymHandler(), s.APIMiddleware(s.RequireTokenAuth())...))
	s.RegisterRouteHandler("DELETE "+RouteAPIAcronym, ChainMiddleware(s.APIDeleteAcronymHandler(), s.APIMiddleware(s.RequireTokenAuth())...))
	s.RegisterRouteHandler("GET "+RouteAPIAcronymUser, ChainMiddleware(s.APIAcronymUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPIAcronymCats, ChainMiddleware(s.APIAcronymCategoriesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPIAttach, ChainMiddleware(s.APIAttachCategoryHandler(), s.APIMiddleware(s.RequireTokenAuth())...))
	s.RegisterRouteHandler("DELETE "+RouteAPIAttach, ChainMiddleware(s.APIDetachCategoryHandler(), s.APIMiddleware(s.RequireTokenAuth())...))

	// API, categories
	s.RegisterRouteHandler("GET "+RouteAPICategories, ChainMiddleware(s.APIListCategoriesHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPICategories, ChainMiddleware(s.APICreateCategoryHandler(), s.APIMiddleware(s.RequireTokenAuth())...))
	s.RegisterRouteHandler("GET "+RouteAPICategory, ChainMiddleware(s.APIGetCategoryHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPICategoryAcros, ChainMiddleware(s.APICategoryAcronymsHandler(), s.APIMiddleware()...))
}
