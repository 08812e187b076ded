package cli

import (
	"context"
	"fmt"
)

const infoText = `Welcome to moodkeeper.

1. Your username & password must be remembered; they are the only way back
   to your journal. No personal info is asked.
2. Unlock admin mode for extra functions. The original password is admin123;
   feel free to change it.
3. Data only saves on this device. Nothing leaves your machine.
4. Boards are writing prompts: if the board is "proud", write about your
   achievements.
5. When you delete a board there is no going back. Be careful what you delete.

Writing it down helps the mind be at ease.`

// Info prints the welcome/usage text. Available before login.
func (a *App) Info(ctx context.Context) error {
	fmt.Fprintln(a.out, infoText)
	return nil
}
