package ytdlp

import "context"

// Installed reports whether the extractor binary can be executed.
func Installed(ctx context.Context, r Runner) bool {
	if r == nil {
		r = ExecRunner{}
	}
	_, err := r.Output(ctx, []string{Bin, "--version"}, nil)
	return err == nil
}
