package rest

const (
	// api
	RouteAPI = "/api"

	// auth
	RouteAuth   = RouteAPI + "/auth"
	RouteSignup = RouteAuth + "/signup"
	RouteLogin  = RouteAuth + "/login"

	// files
	RouteUpload = RouteAPI + "/upload"
	RouteFiles  = RouteAPI + "/files"
	RouteFile   = RouteFiles + "/:file_id"

	// ops
	RouteHealth  = RouteAPI + "/health"
	RouteMetrics = RouteAPI + "/metrics"
)
