package generator

import (
	"github.com/uiforge/uiforge/internal/adapter"
)

// Per-target scaffolding is constant: the payloads never depend on the
// supplied component trees.

const reactTSConfig = `{
  "compilerOptions": {
    "target": "es5",
    "lib": [
      "dom",
      "dom.iterable",
      "esnext"
    ],
    "allowJs": true,
    "skipLibCheck": true,
    "esModuleInterop": true,
    "allowSyntheticDefaultImports": true,
    "strict": true,
    "forceConsistentCasingInFileNames": true,
    "module": "esnext",
    "moduleResolution": "node",
    "resolveJsonModule": true,
    "isolatedModules": true,
    "noEmit": true,
    "jsx": "react-jsx"
  },
  "include": [
    "src"
  ],
  "exclude": [
    "node_modules"
  ]
}`

const vueConfig = `
module.exports = {
    configureWebpack: {
        // Vue.js specific configuration
    }
}
`

const svelteConfig = `
import adapter from '@sveltejs/adapter-auto';

export default {
    kit: {
        adapter: adapter()
    }
};
`

const nextConfig = `
/** @type {import('next').NextConfig} */
const nextConfig = {
    reactStrictMode: true,
    compiler: {
        styledComponents: true
    }
}

module.exports = nextConfig
`

// scaffoldFiles returns the fixed config files emitted alongside generated
// components for a target.
func scaffoldFiles(framework adapter.Framework) map[string]string {
	switch framework {
	case adapter.FrameworkReact:
		return map[string]string{"tsconfig.json": reactTSConfig}
	case adapter.FrameworkVue:
		return map[string]string{"vue.config.js": vueConfig}
	case adapter.FrameworkSvelte:
		return map[string]string{"svelte.config.js": svelteConfig}
	case adapter.FrameworkNextJS:
		return map[string]string{"next.config.js": nextConfig}
	default:
		return nil
	}
}
