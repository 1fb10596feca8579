package emit

import (
	"fmt"
	"strings"
)

// Story renders the Storybook CSF module for one of the fixed component
// shapes. Unknown names are an error, mirroring Component.
func Story(name string) (string, error) {
	tpl, ok := storyTemplates[name]
	if !ok {
		return "", fmt.Errorf("unknown component %q (have %s)", name, strings.Join(ComponentNames(), ", "))
	}
	return tpl, nil
}

var storyTemplates = map[string]string{
	"Button": header + `import type { Meta, StoryObj } from "@storybook/react";
import { Button } from "./Button";

const meta: Meta<typeof Button> = {
  title: "Components/Button",
  component: Button,
  args: { children: "Click me" },
};
export default meta;

type Story = StoryObj<typeof Button>;

export const Primary: Story = { args: { variant: "primary" } };
export const Secondary: Story = { args: { variant: "secondary" } };
export const Ghost: Story = { args: { variant: "ghost" } };
export const Large: Story = { args: { size: "lg" } };
`,

	"Card": header + `import type { Meta, StoryObj } from "@storybook/react";
import { Card } from "./Card";

const meta: Meta<typeof Card> = {
  title: "Components/Card",
  component: Card,
  args: { title: "Card title", children: "Card body copy." },
};
export default meta;

type Story = StoryObj<typeof Card>;

export const Default: Story = {};
export const Untitled: Story = { args: { title: undefined } };
`,

	"Modal": header + `import type { Meta, StoryObj } from "@storybook/react";
import { Modal } from "./Modal";

const meta: Meta<typeof Modal> = {
  title: "Components/Modal",
  component: Modal,
  args: {
    open: true,
    title: "Confirm action",
    children: "Are you sure?",
    onClose: () => {},
  },
};
export default meta;

type Story = StoryObj<typeof Modal>;

export const Open: Story = {};
export const Closed: Story = { args: { open: false } };
`,

	"Input": header + `import type { Meta, StoryObj } from "@storybook/react";
import { Input } from "./Input";

const meta: Meta<typeof Input> = {
  title: "Components/Input",
  component: Input,
  args: { label: "Email address" },
};
export default meta;

type Story = StoryObj<typeof Input>;

export const Default: Story = {};
export const WithError: Story = { args: { error: "Required" } };
`,
}
