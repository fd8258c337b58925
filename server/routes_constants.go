package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Web routes - site
	RouteIndex         = "/"
	RouteAcronymPage   = "/acronyms/{acronymID}"
	RouteUsersPage     = "/users"
	RouteUserPage      = "/users/{userID}"
	RouteCategoriesPg  = "/categories"
	RouteCategoryPage  = "/categories/{categoryID}"
	RouteAcronymCreate = "/acronyms/create"
	RouteAcronymEdit   = "/acronyms/{acronymID}/edit"
	RouteAcronymDelete = "/acronyms/{acronymID}/delete"

	// Web routes - auth
	RouteLogin          = "/login"
	RouteLogout         = "/logout"
	RouteRegister       = "/register"
	RouteLoginGoogle    = "/login-google"
	RouteLoginGitHub    = "/login-github"
	RouteGoogleCallback = "/google-callback"
	RouteGitHubCallback = "/github-callback"
	RouteForgotPassword = "/forgottenPassword"
	RouteResetPassword  = "/resetPassword"

	// API routes
	RouteAPIUsers         = "/api/users"
	RouteAPIUserLogin     = "/api/users/login"
	RouteAPIUser          = "/api/users/{userID}"
	RouteAPIUserAcronyms  = "/api/users/{userID}/acronyms"
	RouteAPIAcronyms      = "/api/acronyms"
	RouteAPIAcronymSearch = "/api/acronyms/search"
	RouteAPIAcronymFirst  = "/api/acronyms/first"
	RouteAPIAcronymSorted = "/api/acronyms/sorted"
	RouteAPIAcronym       = "/api/acronyms/{acronymID}"
	RouteAPIAcronymUser   = "/api/acronyms/{acronymID}/user"
	RouteAPIAcronymCats   = "/api/acronyms/{acronymID}/categories"
	RouteAPIAttach        = "/api/acronyms/{acronymID}/categories/{categoryID}"
	RouteAPICategories    = "/api/categories"
	RouteAPICategory      = "/api/categories/{categoryID}"
	RouteAPICategoryAcros = "/api/categories/{categoryID}/acronyms"
)
