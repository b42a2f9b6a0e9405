package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counter labels in use:
//   app_requests_total, principals_created_total, files_uploaded_total,
//   files_deleted_total, orphaned_objects_total, dangling_records_total,
//   counter_update_failures_total
func NewCounter() *prometheus.CounterVec {
	return promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "filevault",
			Name:      "general_counters",
		},
		[]string{"result"})
}
