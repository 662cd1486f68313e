package store

// SQL query constants organized by entity.
// All SQL lives here — PostgresStore methods reference these constants.

// Tracker queries.
const (
	trackerColumns = `id, recipient, asin, alert_mode, target_price, percent_threshold,
		cooldown_hours, last_alert_sent_at, last_alert_price, version,
		enabled, created_at, updated_at`

	queryCreateTracker = `
		INSERT INTO trackers (
			recipient, asin, alert_mode, target_price, percent_threshold,
			cooldown_hours, enabled, created_at, updated_at
		) VALUES (
			@recipient, @asin, @alert_mode, @target_price, @percent_threshold,
			@cooldown_hours, @enabled, now(), now()
		)
		RETURNING id, version, created_at, updated_at`

	queryGetTracker = `
		SELECT ` + trackerColumns + `
		FROM trackers
		WHERE id = $1`

	queryListTrackers = `
		SELECT ` + trackerColumns + `
		FROM trackers
		WHERE ($1 = false OR enabled)
		ORDER BY created_at`

	queryUpdateTracker = `
		UPDATE trackers SET
			recipient = @recipient,
			asin = @asin,
			alert_mode = @alert_mode,
			target_price = @target_price,
			percent_threshold = @percent_threshold,
			cooldown_hours = @cooldown_hours,
			enabled = @enabled,
			updated_at = now()
		WHERE id = @id
		RETURNING updated_at`

	queryDeleteTracker = `DELETE FROM trackers WHERE id = $1`

	querySetTrackerEnabled = `
		UPDATE trackers SET enabled = $2, updated_at = now()
		WHERE id = $1`

	// The version condition makes the read-evaluate-update sequence safe
	// against concurrent workers: whoever updates first wins, everyone
	// else gets zero rows and reports ErrVersionConflict.
	queryUpdateAlertState = `
		UPDATE trackers SET
			last_alert_sent_at = $2,
			last_alert_price = $3,
			version = version + 1,
			updated_at = now()
		WHERE id = $1 AND version = $4`
)

// Price history queries.
const (
	queryInsertPricePoint = `
		INSERT INTO price_points (asin, price, observed_at)
		VALUES ($1, $2, $3)`

	queryListPriceHistory = `
		SELECT id, asin, price, observed_at
		FROM price_points
		WHERE asin = $1
		ORDER BY observed_at DESC
		LIMIT $2`
)

// Job run queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name, started_at, status)
		VALUES ($1, now(), 'running')
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at = now(),
			status = $2,
			alerts_sent = $3,
			error_count = $4,
			error_text = $5
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			alerts_sent, error_count, COALESCE(error_text, '')
		FROM job_runs
		WHERE ($1 = '' OR job_name = $1)
		ORDER BY started_at DESC
		LIMIT $2`
)

// Job lock queries. A lock row is free when expired; acquisition steals
// expired locks so a crashed run cannot block processing forever.
const (
	queryAcquireJobLock = `
		INSERT INTO job_locks (job_name, holder, acquired_at, expires_at)
		VALUES ($1, $2, now(), now() + $3)
		ON CONFLICT (job_name) DO UPDATE SET
			holder = EXCLUDED.holder,
			acquired_at = EXCLUDED.acquired_at,
			expires_at = EXCLUDED.expires_at
		WHERE job_locks.expires_at < now() OR job_locks.holder = EXCLUDED.holder
		RETURNING job_name`

	queryReleaseJobLock = `
		DELETE FROM job_locks
		WHERE job_name = $1 AND holder = $2`
)
