package lessons

import (
	"context"
	"fmt"

	"lld/internal/domain/model"
	"lld/internal/patterns/proxy"
)

func proxyLesson() lesson {
	return lesson{
		info: model.Lesson{
			Key:     "proxy",
			Title:   "Premium reader, lazy images, cached lookups",
			Pattern: "Proxy",
			Summary: "Protection, virtual and caching proxies in front of a real subject.",
		},
		run: func(ctx context.Context, p *printer) error {
			reader := proxy.NewSecureReader(proxy.PDFReader{})
			for _, u := range []proxy.User{{Name: "alice", Premium: true}, {Name: "bob"}} {
				out, err := reader.Unlock(u, "handbook.pdf")
				if err != nil {
					p.line("protection: %v", err)
					continue
				}
				p.line("protection: %s", out)
			}

			img := proxy.NewLazyImage("cover.png", func(name string) (proxy.Image, error) {
				p.line("virtual: loading %s from disk", name)
				return proxy.DiskImage{Name: name}, nil
			})
			p.line("virtual: proxy created, loads so far: %d", img.Loaded())
			p.line("virtual: %s", img.Display())
			p.line("virtual: %s", img.Display())
			p.line("virtual: loads so far: %d", img.Loaded())

			backend := proxy.FetcherFunc(func(_ context.Context, key string) (string, error) {
				return fmt.Sprintf("profile(%s)", key), nil
			})
			cache := proxy.NewCachingFetcher(backend)
			for _, key := range []string{"u1", "u2", "u1", "u1"} {
				v, err := cache.Fetch(ctx, key)
				if err != nil {
					return err
				}
				p.line("caching: %s -> %s", key, v)
			}
			hits, misses := cache.Stats()
			p.line("caching: %d hits, %d misses", hits, misses)
			return nil
		},
	}
}
