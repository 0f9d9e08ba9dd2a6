package jobs

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// InvitationPurger deletes invitations older than ttl
type InvitationPurger interface {
	PurgeExpired(ctx context.Context, ttl time.Duration) (int64, error)
}

// InvitationExpiry periodically removes invitations older than their TTL
type InvitationExpiry struct {
	purger     InvitationPurger
	ttl        time.Duration
	interval   time.Duration
	startDelay time.Duration
	stopCh     chan struct{}
	wg         sync.WaitGroup
	running    bool
	mu         sync.Mutex
}

// NewInvitationExpiry creates a new invitation expiry job
func NewInvitationExpiry(purger InvitationPurger, ttl, interval time.Duration) *InvitationExpiry {
	if ttl == 0 {
		ttl = 7 * 24 * time.Hour
	}
	if interval == 0 {
		interval = time.Hour
	}
	return &InvitationExpiry{
		purger:     purger,
		ttl:        ttl,
		interval:   interval,
		startDelay: 5 * time.Second,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the expiry loop. Calling Start on a running job does nothing.
func (j *InvitationExpiry) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	slog.Info("invitation expiry started",
		slog.Duration("ttl", j.ttl),
		slog.Duration("interval", j.interval),
	)
}

// Stop ends the loop and waits for an in-flight purge to finish
func (j *InvitationExpiry) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	slog.Info("invitation expiry stopped")
}

func (j *InvitationExpiry) run() {
	defer j.wg.Done()

	// Let the server finish starting before the first purge
	select {
	case <-time.After(j.startDelay):
		j.purge()
	case <-j.stopCh:
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			j.purge()
		case <-j.stopCh:
			return
		}
	}
}

func (j *InvitationExpiry) purge() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	removed, err := j.RunOnce(ctx)
	if err != nil {
		slog.Error("failed to purge expired invitations", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		slog.Info("purged expired invitations", slog.Int64("removed", removed))
	}
}

// RunOnce purges expired invitations once (for testing or manual trigger)
func (j *InvitationExpiry) RunOnce(ctx context.Context) (int64, error) {
	return j.purger.PurgeExpired(ctx, j.ttl)
}

// IsRunning returns whether the job is running
func (j *InvitationExpiry) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
