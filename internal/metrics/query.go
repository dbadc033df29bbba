package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	movieQueriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mflixd",
			Name:      "movie_queries_total",
			Help:      "Total number of movie list queries",
		},
		[]string{"text_search"},
	)

	movieQueryResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mflixd",
			Name:      "movie_query_results",
			Help:      "Number of movies returned per list query",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		},
	)
)

func init() {
	prometheus.MustRegister(movieQueriesTotal)
	prometheus.MustRegister(movieQueryResults)
}

// ObserveMovieQuery records a movie list query and its result size.
func ObserveMovieQuery(textSearch bool, results int) {
	label := "false"
	if textSearch {
		label = "true"
	}
	movieQueriesTotal.WithLabelValues(label).Inc()
	movieQueryResults.Observe(float64(results))
}
