package cmd

import (
	"os"

	"github.com/cheggaaa/pb/v3"
	log "github.com/sirupsen/logrus"
)

// barProgress draws one terminal progress bar per pipeline stage. Step
// may be called from concurrent workers.
type barProgress struct {
	bar *pb.ProgressBar
}

func (p *barProgress) Start(name string, total int64) {
	if p.bar != nil {
		p.bar.Finish()
	}

	log.Info(name)

	p.bar = pb.New64(total)
	p.bar.SetTemplate(pb.Full)
	p.bar.SetWriter(os.Stderr)
	p.bar.Start()
}

func (p *barProgress) Step(n int64) {
	p.bar.Add64(n)
}

func (p *barProgress) finish() {
	if p.bar != nil {
		p.bar.Finish()
	}
}
