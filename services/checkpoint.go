package services

import (
	"time"

	"github.com/sirupsen/logrus"

	"prms/backend/database"
)

// StartCheckpointScheduler copies the current snapshot into the backup
// table on a fixed interval. Backups are a convenience against operator
// mistakes that outrun the 50-entry undo window; they carry no
// durability guarantee beyond the single live blob.
func StartCheckpointScheduler(db *database.DB, log *logrus.Logger, interval time.Duration) chan<- struct{} {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := db.BackupSnapshot(); err != nil {
					log.WithError(err).Warn("snapshot backup failed")
					continue
				}
				log.Debug("snapshot backup written")
			case <-stop:
				return
			}
		}
	}()
	return stop
}
