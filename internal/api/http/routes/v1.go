package routes

import (
	"github.com/gin-gonic/gin"

	communityhttp "github.com/creatorclub/cc-backend/internal/community/http"
	communitysvc "github.com/creatorclub/cc-backend/internal/community/service"
	"github.com/creatorclub/cc-backend/internal/dashboard"
	dashboardhttp "github.com/creatorclub/cc-backend/internal/dashboard/http"
	earningshttp "github.com/creatorclub/cc-backend/internal/earnings/http"
	earningssvc "github.com/creatorclub/cc-backend/internal/earnings/service"
	goalshttp "github.com/creatorclub/cc-backend/internal/goals/http"
	goalssvc "github.com/creatorclub/cc-backend/internal/goals/service"
	leadshttp "github.com/creatorclub/cc-backend/internal/leads/http"
	leadssvc "github.com/creatorclub/cc-backend/internal/leads/service"
	libraryhttp "github.com/creatorclub/cc-backend/internal/library/http"
	librarysvc "github.com/creatorclub/cc-backend/internal/library/service"
	projectshttp "github.com/creatorclub/cc-backend/internal/projects/http"
	projectssvc "github.com/creatorclub/cc-backend/internal/projects/service"
	settingshttp "github.com/creatorclub/cc-backend/internal/settings/http"
	settingssvc "github.com/creatorclub/cc-backend/internal/settings/service"
)

// V1Deps collects the wired services the v1 API exposes.
type V1Deps struct {
	Projects  *projectssvc.Service
	Earnings  *earningssvc.Service
	Leads     *leadssvc.Service
	Goals     *goalssvc.Service
	Community *communitysvc.Service
	Settings  *settingssvc.Service
	Library   *librarysvc.Service
	Dashboard *dashboard.Service
}

// RegisterV1 mounts every module under /api/v1.
func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")

	projectshttp.New(dep.Projects).Register(api.Group("/projects"))
	earningshttp.New(dep.Earnings).Register(api.Group("/earnings"))
	leadshttp.New(dep.Leads).Register(api.Group("/leads"))
	goalshttp.New(dep.Goals).Register(api.Group("/goals"))
	communityhttp.New(dep.Community).Register(api.Group("/community"))
	settingshttp.New(dep.Settings).Register(api.Group("/settings"))
	libraryhttp.New(dep.Library).Register(api.Group("/library"))
	dashboardhttp.New(dep.Dashboard).Register(api.Group("/dashboard"))
}
