package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/webblaze/projectflow-be/config"
	"github.com/webblaze/projectflow-be/database"
	"github.com/webblaze/projectflow-be/handler"
	"github.com/webblaze/projectflow-be/middleware"
	"github.com/webblaze/projectflow-be/repository"
	"github.com/webblaze/projectflow-be/service"
	"github.com/webblaze/projectflow-be/utils"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the API server",
	Long:  `Starts the HTTP server and the background cleanup jobs.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		mongoClient, err := database.Connect(context.Background(), cfg.MongoURI)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		mongoDb := mongoClient.Database(cfg.MongoDatabase)

		// init repos
		userRepo := repository.NewUserRepo(mongoDb.Collection("users"))
		employeeRepo := repository.NewEmployeeRepo(mongoDb.Collection("employees"))
		principalRepo := repository.NewPrincipalRepo(userRepo, employeeRepo)
		teamRepo := repository.NewTeamRepo(mongoDb.Collection("teams"))
		projectRepo := repository.NewProjectRepo(mongoDb.Collection("projects"))
		taskRepo := repository.NewTaskRepo(mongoDb.Collection("tasks"))
		activityRepo := repository.NewActivityRepo(mongoDb.Collection("activities"))
		counterRepo := repository.NewCounterRepo(mongoDb.Collection("counters"))

		// init services
		jwtManager := utils.NewJWTManager(cfg.JWTSecret)
		emailService := service.NewEmailService(cfg)
		imageService, err := service.NewImageService(cfg)
		if err != nil {
			log.Fatalf("Failed to init image store: %v", err)
		}
		feed := service.NewWebSocketService()
		activityService := service.NewActivityService(activityRepo, feed)
		idService := service.NewIdentifierService(counterRepo, employeeRepo, projectRepo, taskRepo)
		authService := service.NewAuthService(userRepo, employeeRepo, principalRepo, jwtManager, emailService)
		employeeService := service.NewEmployeeService(employeeRepo, principalRepo, idService, emailService, activityService)
		teamService := service.NewTeamService(teamRepo, employeeRepo, activityService)
		projectService := service.NewProjectService(projectRepo, teamRepo, employeeRepo, principalRepo, idService, imageService, activityService)
		taskService := service.NewTaskService(taskRepo, employeeRepo, projectRepo, idService, activityService)
		otpService := service.NewOTPService(principalRepo, emailService)
		twoFactorService := service.NewTwoFactorService(principalRepo, jwtManager, emailService)
		settingsService := service.NewSettingsService(userRepo, activityService)
		cleanupService := service.NewCleanupService(employeeRepo, projectRepo, imageService, cfg)

		// init handlers
		corsHandler := handler.NewCorsHandler()
		authHandler := handler.NewAuthHandler(authService)
		employeeHandler := handler.NewEmployeeHandler(employeeService)
		teamHandler := handler.NewTeamHandler(teamService)
		projectHandler := handler.NewProjectHandler(projectService)
		taskHandler := handler.NewTaskHandler(taskService)
		otpHandler := handler.NewOTPHandler(otpService)
		twoFactorHandler := handler.NewTwoFactorHandler(twoFactorService)
		settingsHandler := handler.NewSettingsHandler(settingsService)
		activityHandler := handler.NewActivityHandler(activityService, feed)

		stopCleanup, err := cleanupService.Start()
		if err != nil {
			log.Fatalf("Failed to start cleanup jobs: %v", err)
		}
		defer stopCleanup()

		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		apiV1.POST("/register", authHandler.HandleRegister)
		apiV1.POST("/login", authHandler.HandleLogin)
		apiV1.POST("/employees/first-login", employeeHandler.HandleFirstLogin)
		apiV1.POST("/otp/send", otpHandler.HandleSendOTP)
		apiV1.POST("/otp/verify", otpHandler.HandleVerifyOTP)
		apiV1.POST("/password/reset", otpHandler.HandleResetPassword)
		apiV1.POST("/2fa/verify", twoFactorHandler.HandleVerify)
		apiV1.POST("/2fa/validate-device", twoFactorHandler.HandleValidateDeviceToken)

		authed := apiV1.Group("/")
		authed.Use(middleware.AuthMiddleware(jwtManager, principalRepo))
		{
			authed.GET("/profile", authHandler.HandleGetProfile)
			authed.PUT("/profile", authHandler.HandleUpdateProfile)

			authed.POST("/employees", employeeHandler.HandleAddEmployee)
			authed.GET("/employees", employeeHandler.HandleListEmployees)
			authed.GET("/employees/role/:role", employeeHandler.HandleListByRole)
			authed.GET("/employees/:teamMemberId", employeeHandler.HandleGetEmployee)
			authed.PUT("/employees/:teamMemberId", employeeHandler.HandleEditEmployee)
			authed.DELETE("/employees/:teamMemberId", employeeHandler.HandleDeleteEmployee)

			authed.POST("/teams", teamHandler.HandleCreateTeam)
			authed.GET("/teams", teamHandler.HandleListTeams)
			authed.GET("/teams/:teamId", teamHandler.HandleGetTeam)
			authed.PUT("/teams/:teamId", teamHandler.HandleUpdateTeam)
			authed.DELETE("/teams/:teamId", teamHandler.HandleDeleteTeam)

			authed.POST("/projects", projectHandler.HandleCreateProject)
			authed.GET("/projects", projectHandler.HandleListProjects)
			authed.GET("/projects/member/:teamMemberId", projectHandler.HandleListProjectsByMember)
			authed.GET("/projects/:projectId", projectHandler.HandleGetProject)
			authed.PUT("/projects/:projectId", projectHandler.HandleUpdateProject)
			authed.DELETE("/projects/:projectId", projectHandler.HandleSoftDeleteProject)
			authed.DELETE("/projects/:projectId/permanent", projectHandler.HandlePermanentDeleteProject)

			authed.POST("/phases", projectHandler.HandleAddPhase)
			authed.PUT("/phases/status", projectHandler.HandleUpdatePhaseStatus)
			authed.DELETE("/phases", projectHandler.HandleDeletePhase)
			authed.GET("/projects/:projectId/phases", projectHandler.HandleListPhases)
			authed.POST("/projects/:projectId/phases/:phaseId/comments", projectHandler.HandleAddPhaseComment)
			authed.GET("/projects/:projectId/phases/:phaseId/comments", projectHandler.HandleListPhaseComments)

			authed.POST("/projects/:projectId/subtasks", projectHandler.HandleAddSubtask)
			authed.PUT("/projects/:projectId/subtasks", projectHandler.HandleEditSubtask)
			authed.PUT("/projects/:projectId/subtasks/status", projectHandler.HandleUpdateSubtaskStatus)
			authed.DELETE("/projects/:projectId/subtasks/:subtaskId", projectHandler.HandleDeleteSubtask)
			authed.GET("/projects/:projectId/subtasks", projectHandler.HandleListSubtasks)
			authed.GET("/projects/:projectId/subtasks/activity", projectHandler.HandleSubtaskActivity)

			// Project-less subtask routes: the containing project is
			// located from the subtask id.
			authed.PUT("/subtasks", projectHandler.HandleEditSubtask)
			authed.PUT("/subtasks/status", projectHandler.HandleUpdateSubtaskStatus)
			authed.DELETE("/subtasks/:subtaskId", projectHandler.HandleDeleteSubtask)

			authed.POST("/tasks", taskHandler.HandleCreateTask)
			authed.GET("/tasks/own", taskHandler.HandleListOwnTasks)
			authed.GET("/tasks", taskHandler.HandleListAllTasks)
			authed.GET("/tasks/history", taskHandler.HandleListTaskHistory)
			authed.GET("/tasks/ongoing", taskHandler.HandleListOngoingTasks)
			authed.GET("/tasks/project/:projectId/member/:teamMemberId", taskHandler.HandleListMemberProjectTasks)
			authed.GET("/tasks/:taskId", taskHandler.HandleGetTask)
			authed.PUT("/tasks/:taskId", taskHandler.HandleUpdateTask)
			authed.PUT("/tasks/assignee/:teamMemberId", taskHandler.HandleUpdateTasksByAssignee)
			authed.DELETE("/tasks/:taskId", taskHandler.HandleDeleteTask)
			authed.DELETE("/tasks/assignee/:teamMemberId", taskHandler.HandleDeleteTasksByAssignee)

			authed.GET("/2fa/setup", twoFactorHandler.HandleSetup)
			authed.POST("/2fa/enable", twoFactorHandler.HandleEnable)
			authed.POST("/2fa/disable", twoFactorHandler.HandleDisable)
			authed.GET("/2fa/devices", twoFactorHandler.HandleListTrustedDevices)
			authed.DELETE("/2fa/devices/:deviceId", twoFactorHandler.HandleRemoveTrustedDevice)
			authed.GET("/2fa/backup-codes", twoFactorHandler.HandleGetBackupCodes)
			authed.POST("/2fa/backup-codes/regenerate", twoFactorHandler.HandleRegenerateBackupCodes)

			authed.GET("/settings", settingsHandler.HandleGetSettings)
			authed.PUT("/settings/notifications", settingsHandler.HandleUpdateNotifications)
			authed.PUT("/settings/appearance", settingsHandler.HandleUpdateAppearance)
			authed.PUT("/settings/security", settingsHandler.HandleUpdateSecurity)
			authed.PUT("/settings/privacy", settingsHandler.HandleUpdatePrivacy)

			authed.GET("/activity", activityHandler.HandleRecentActivity)
			authed.GET("/activity/feed", activityHandler.HandleActivityFeed)
		}

		log.Printf("Starting server on port %s...\n", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
}
