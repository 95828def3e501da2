package i18n

// Key paths of the shipped catalog. Every language defines all of them.
const (
	KeyNavOverview   = "nav.overview"
	KeyNavLocalities = "nav.localities"
	KeyNavAnalytics  = "nav.analytics"
	KeyNavSettings   = "nav.settings"

	KeyDashboardWelcome         = "dashboard.welcome"
	KeyDashboardSubtitle        = "dashboard.subtitle"
	KeyDashboardUpcomingFeature = "dashboard.upcomingFeature"
	KeyDashboardComingSoon      = "dashboard.comingSoon"

	KeyMetricsTotalBoxes       = "metrics.totalBoxes"
	KeyMetricsActiveLocalities = "metrics.activeLocalities"
	KeyMetricsInTransit        = "metrics.inTransit"
	KeyMetricsAlerts           = "metrics.alerts"
	KeyMetricsSystemHealth     = "metrics.systemHealth"
	KeyMetricsBoxUtilization   = "metrics.boxUtilization"

	KeyRecentActivityTitle    = "recentActivity.title"
	KeyRecentActivitySubtitle = "recentActivity.subtitle"

	KeySystemStatusTitle          = "systemStatus.title"
	KeySystemStatusSubtitle       = "systemStatus.subtitle"
	KeySystemStatusTrackingSystem = "systemStatus.trackingSystem"
	KeySystemStatusQRScanner      = "systemStatus.qrScanner"
	KeySystemStatusDatabaseSync   = "systemStatus.databaseSync"
	KeySystemStatusAlertSystem    = "systemStatus.alertSystem"
)

var catalogKeys = []string{
	KeyNavOverview,
	KeyNavLocalities,
	KeyNavAnalytics,
	KeyNavSettings,
	KeyDashboardWelcome,
	KeyDashboardSubtitle,
	KeyDashboardUpcomingFeature,
	KeyDashboardComingSoon,
	KeyMetricsTotalBoxes,
	KeyMetricsActiveLocalities,
	KeyMetricsInTransit,
	KeyMetricsAlerts,
	KeyMetricsSystemHealth,
	KeyMetricsBoxUtilization,
	KeyRecentActivityTitle,
	KeyRecentActivitySubtitle,
	KeySystemStatusTitle,
	KeySystemStatusSubtitle,
	KeySystemStatusTrackingSystem,
	KeySystemStatusQRScanner,
	KeySystemStatusDatabaseSync,
	KeySystemStatusAlertSystem,
}

// Keys returns the key paths of the shipped catalog in declaration order.
func Keys() []string {
	out := make([]string, len(catalogKeys))
	copy(out, catalogKeys)
	return out
}
