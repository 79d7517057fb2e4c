package progress

import (
	"time"
)

// Terminate kills the active progress of a terminal, typically on unbind.
// Completed or terminated progress is never transitioned again.
func (uc *DefaultProgressUsecase) Terminate(terminalSN string) error {
	progress, err := uc.progressRepo.GetActiveProgressBySN(terminalSN)
	if err != nil {
		return err
	}
	return uc.progressRepo.TerminateProgress(progress.ID, time.Now())
}
