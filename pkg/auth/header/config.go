package header

func WithUserHeader(val string) Option {
	return func(p *Provider) {
		p.userHeaders = []string{val}
	}
}

func WithEmailHeader(val string) Option {
	return func(p *Provider) {
		p.emailHeaders = []string{val}
	}
}
